package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/gitver/internal/gitquery"
	"github.com/oshokin/gitver/internal/logger"
)

// Config holds the settings shared by all gitver commands.
type Config struct {
	// GitBinary is the git executable name or path.
	GitBinary string `yaml:"git" env:"GITVER_GIT, overwrite"`
	// Dir is the working directory the repository is queried from.
	Dir string `yaml:"dir" env:"GITVER_DIR, overwrite"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level" env:"GITVER_LOG_LEVEL, overwrite"`
	// Timeout bounds each git invocation. Zero means no bound.
	Timeout time.Duration `yaml:"timeout" env:"GITVER_TIMEOUT, overwrite"`
	// TolerateBranchError makes a failing branch lookup fall back to the
	// unknown version instead of failing the whole resolution.
	TolerateBranchError bool `yaml:"tolerate_branch_error" env:"GITVER_TOLERATE_BRANCH_ERROR, overwrite"`
}

const (
	// DefaultConfigFilename is looked up in the current directory when no path is given.
	DefaultConfigFilename = "gitver.yaml"

	// DefaultDir is the working directory used when none is configured.
	DefaultDir = "."

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errNegativeTimeout is returned when the timeout is below zero.
	errNegativeTimeout = errors.New("timeout must not be negative")
	// errUnknownLogLevel is returned for log levels ParseLogLevel does not know.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Load reads configuration from path. An empty path means DefaultConfigFilename,
// which may be absent; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFilename
	}

	cfg := new(Config)

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err = yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from GITVER_* variables found by lookuper.
// A nil lookuper reads the process environment.
func ApplyEnv(ctx context.Context, cfg *Config, lookuper envconfig.Lookuper) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}

	//nolint:exhaustruct // Only target and lookuper are relevant.
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: lookuper,
	}); err != nil {
		return fmt.Errorf("process environment: %w", err)
	}

	return nil
}

// Validate checks the settings and fills defaults for empty fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.GitBinary == "" {
		cfg.GitBinary = gitquery.DefaultBinary
	}

	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, cfg.LogLevel)
	}

	if cfg.Timeout < 0 {
		return errNegativeTimeout
	}

	return nil
}
