package ldflags

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	domain "github.com/oshokin/gitver/internal/domain/version"
	"github.com/oshokin/gitver/internal/logger"
	"github.com/oshokin/gitver/internal/service/common"
	"github.com/oshokin/gitver/internal/version"
)

// Options contains inputs for the ldflags entry point.
type Options struct {
	common.Options

	// Package is the import path whose variables are set (defaults to gitver's version package).
	Package string
}

// noCommit is embedded when the resolution carries no commit hash.
const noCommit = "none"

// errPackageHasSpace is returned for import paths the linker cannot take.
var errPackageHasSpace = errors.New("package import path must not contain whitespace")

// now is replaced in tests.
//
//nolint:gochecknoglobals // Test seam for the build timestamp.
var now = time.Now

// Run resolves the version and writes the linker flags to w.
func Run(ctx context.Context, opts *Options, w io.Writer) error {
	pkg := opts.Package
	if pkg == "" {
		pkg = version.ImportPath
	}

	if strings.ContainsAny(pkg, " \t\n") {
		return fmt.Errorf("%w: %q", errPackageHasSpace, pkg)
	}

	ctx, r, err := common.NewResolver(ctx, "gitver-ldflags", &opts.Options)
	if err != nil {
		return err
	}

	res, err := r.Resolve(ctx)
	if err != nil {
		logger.ErrorKV(ctx, "Version resolution failed", "error", err)

		return err
	}

	logger.DebugKV(ctx, "Rendering linker flags", "package", pkg, "version", res.Version)

	_, err = fmt.Fprintln(w, Render(pkg, res, now()))

	return err
}

// Render returns the -X flags for pkg, separated by spaces.
func Render(pkg string, res *domain.Resolution, buildTime time.Time) string {
	commit := res.Commit()
	if commit == "" {
		commit = noCommit
	}

	flags := []string{
		flag(pkg, version.VersionVar, res.Version),
		flag(pkg, version.CommitVar, commit),
		flag(pkg, version.BuildTimeVar, buildTime.UTC().Format(time.RFC3339)),
	}

	return strings.Join(flags, " ")
}

// flag renders a single -X assignment, quoting values that contain whitespace.
func flag(pkg, name, value string) string {
	assignment := fmt.Sprintf("%s.%s=%s", pkg, name, value)
	if strings.ContainsAny(value, " \t") {
		assignment = "'" + assignment + "'"
	}

	return "-X " + assignment
}
