//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig_Precedence verifies file < environment < flags.
func TestLoadConfig_Precedence(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gitver.yaml")
	contents := "git: file-git\ndir: file-dir\nlog_level: warn\ntimeout: 1s\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	opts := &Options{
		ConfigPath: path,
		LogLevel:   "debug",
		Lookuper: envconfig.MapLookuper(map[string]string{
			"GITVER_DIR": "env-dir",
			"GITVER_GIT": "env-git",
		}),
		GitBinary: "flag-git",
	}

	cfg, err := LoadConfig(context.Background(), opts)
	require.NoError(t, err)
	require.Equal(t, "flag-git", cfg.GitBinary)
	require.Equal(t, "env-dir", cfg.Dir)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, time.Second, cfg.Timeout)
	require.False(t, cfg.TolerateBranchError)
}

// TestLoadConfig_Errors covers a missing explicit file and an invalid override.
func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(context.Background(), &Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
		Lookuper:   envconfig.MapLookuper(nil),
	})
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "gitver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))

	_, err = LoadConfig(context.Background(), &Options{
		ConfigPath: path,
		LogLevel:   "loud",
		Lookuper:   envconfig.MapLookuper(nil),
	})
	require.Error(t, err)
}

// TestNewResolver builds a resolver against a directory outside any repository.
func TestNewResolver(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gitver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))

	ctx, r, err := NewResolver(context.Background(), "gitver", &Options{
		ConfigPath:          path,
		GitBinary:           filepath.Join(t.TempDir(), "no-such-git"),
		TolerateBranchError: true,
		Lookuper:            envconfig.MapLookuper(nil),
	})
	require.NoError(t, err)
	require.NotNil(t, ctx)

	// Without a usable git binary every query fails and the unknown version wins.
	v, err := r.Version(ctx)
	require.NoError(t, err)
	require.Equal(t, "0.0.0_UNKNOWN", v)
}
