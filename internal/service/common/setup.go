//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/oshokin/gitver/internal/config"
	"github.com/oshokin/gitver/internal/gitquery"
	"github.com/oshokin/gitver/internal/logger"
	"github.com/oshokin/gitver/internal/resolver"
)

// Options contains the inputs shared by every command. Zero values mean
// "not set on the command line" and leave file or environment values alone.
type Options struct {
	// ConfigPath is an optional path to the YAML settings file.
	ConfigPath string
	// Dir overrides the directory the repository is queried from.
	Dir string
	// GitBinary overrides the git executable.
	GitBinary string
	// LogLevel overrides the log level.
	LogLevel string
	// Timeout overrides the per-invocation git timeout. Negative values fail validation.
	Timeout time.Duration
	// TolerateBranchError enables the branch lookup fallback.
	TolerateBranchError bool

	// Lookuper replaces the process environment, used by tests.
	Lookuper envconfig.Lookuper
}

// LoadConfig merges the settings file, environment and flag overrides, then validates the result.
func LoadConfig(ctx context.Context, opts *Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if err = config.ApplyEnv(ctx, cfg, opts.Lookuper); err != nil {
		return nil, err
	}

	if opts.Dir != "" {
		cfg.Dir = opts.Dir
	}

	if opts.GitBinary != "" {
		cfg.GitBinary = opts.GitBinary
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	if opts.Timeout != 0 {
		cfg.Timeout = opts.Timeout
	}

	if opts.TolerateBranchError {
		cfg.TolerateBranchError = true
	}

	if err = config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return cfg, nil
}

// NewResolver loads the configuration, applies the log level and builds a
// resolver backed by the git CLI. The returned context carries a logger
// scoped to the command name and repository directory.
func NewResolver(ctx context.Context, name string, opts *Options) (context.Context, *resolver.Resolver, error) {
	cfg, err := LoadConfig(ctx, opts)
	if err != nil {
		return ctx, nil, err
	}

	// Validate has already checked the level.
	level, _ := logger.ParseLogLevel(cfg.LogLevel)
	logger.SetLevel(level)

	ctx = logger.WithName(ctx, name)
	ctx = logger.WithKV(ctx, "dir", cfg.Dir)

	querier := gitquery.NewCLI(
		cfg.GitBinary,
		gitquery.WithDir(cfg.Dir),
		gitquery.WithTimeout(cfg.Timeout),
	)

	logger.DebugKV(ctx, "Using git", "binary", cfg.GitBinary, "timeout", cfg.Timeout,
		"tolerate_branch_error", cfg.TolerateBranchError)

	return ctx, resolver.New(querier, resolver.WithTolerateBranchError(cfg.TolerateBranchError)), nil
}
