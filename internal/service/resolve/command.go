package resolve

import (
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	domain "github.com/oshokin/gitver/internal/domain/version"
	"github.com/oshokin/gitver/internal/logger"
	"github.com/oshokin/gitver/internal/service/common"
)

// Run resolves the version and writes it to w followed by a newline.
func Run(ctx context.Context, opts *common.Options, w io.Writer) error {
	ctx, r, err := common.NewResolver(ctx, "gitver", opts)
	if err != nil {
		return err
	}

	res, err := r.Resolve(ctx)
	if err != nil {
		logger.ErrorKV(ctx, "Version resolution failed", "error", err)

		return err
	}

	logger.DebugKV(ctx, "Version resolved", "tier", res.Tier, "version", res.Version)

	_, err = fmt.Fprintln(w, res.Version)

	return err
}

// Describe resolves the version and renders its components as a table.
func Describe(ctx context.Context, opts *common.Options, w io.Writer) error {
	ctx, r, err := common.NewResolver(ctx, "gitver-describe", opts)
	if err != nil {
		return err
	}

	res, err := r.Resolve(ctx)
	if err != nil {
		logger.ErrorKV(ctx, "Version resolution failed", "error", err)

		return err
	}

	RenderTable(w, res)

	return nil
}

// RenderTable writes the resolution components as a rounded table.
func RenderTable(w io.Writer, res *domain.Resolution) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"Version", res.Version},
		{"Tier", res.Tier.String()},
		{"Tag", orDash(res.Tag)},
		{"Commits", orDash(res.Commits)},
		{"Commit", orDash(res.Commit())},
		{"Dirty", res.Dirty},
		{"Branch", orDash(res.Branch)},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
