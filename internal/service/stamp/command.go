package stamp

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/oshokin/gitver/internal/logger"
	"github.com/oshokin/gitver/internal/repository/buildinfo"
	"github.com/oshokin/gitver/internal/service/common"
)

// Options contains inputs for the stamp entry point.
type Options struct {
	common.Options

	// Output is the build metadata file path (defaults to build-info.yaml).
	Output string
}

// now is replaced in tests.
//
//nolint:gochecknoglobals // Test seam for the generation timestamp.
var now = time.Now

// Run resolves the version, writes the build metadata file and prints the version to w.
func Run(ctx context.Context, opts *Options, w io.Writer) error {
	ctx, r, err := common.NewResolver(ctx, "gitver-stamp", &opts.Options)
	if err != nil {
		return err
	}

	res, err := r.Resolve(ctx)
	if err != nil {
		logger.ErrorKV(ctx, "Version resolution failed", "error", err)

		return err
	}

	repo := buildinfo.NewFileRepository(opts.Output)
	doc := buildinfo.NewDocument(res, now())

	if err = repo.Save(ctx, doc); err != nil {
		return fmt.Errorf("stamp build info: %w", err)
	}

	logger.InfoKV(ctx, "Build info written", "path", repo.Path(), "version", doc.Version, "tier", doc.Tier)

	_, err = fmt.Fprintln(w, doc.Version)

	return err
}
