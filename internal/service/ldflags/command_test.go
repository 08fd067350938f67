package ldflags

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/gitver/internal/domain/version"
	"github.com/oshokin/gitver/internal/service/common"
)

// TestRender checks flag layout for tagged and unknown resolutions.
func TestRender(t *testing.T) {
	t.Parallel()

	buildTime := time.Date(2026, 10, 19, 10, 0, 0, 0, time.FixedZone("X", 7200))

	got := Render("example.com/app/internal/version", &domain.Resolution{
		Tier:    domain.TierTagged,
		Version: "1.2.5+gabc1234-dirty",
		SHA:     "gabc1234-dirty",
		Dirty:   true,
	}, buildTime)
	require.Equal(t,
		"-X example.com/app/internal/version.Version=1.2.5+gabc1234-dirty "+
			"-X example.com/app/internal/version.Commit=gabc1234 "+
			"-X example.com/app/internal/version.BuildTime=2026-10-19T08:00:00Z",
		got)

	got = Render("main", &domain.Resolution{Version: domain.UnknownVersion}, buildTime)
	require.Contains(t, got, "-X main.Version=0.0.0_UNKNOWN")
	require.Contains(t, got, "-X main.Commit=none")
}

// TestFlag_Quotes verifies that whitespace in values is quoted.
func TestFlag_Quotes(t *testing.T) {
	t.Parallel()

	require.Equal(t, "-X main.Version=1.0", flag("main", "Version", "1.0"))
	require.Equal(t, "-X 'main.Note=a b'", flag("main", "Note", "a b"))
}

// TestRun checks the default package and input validation.
//
//nolint:paralleltest // Replaces the package clock.
func TestRun(t *testing.T) {
	now = func() time.Time { return time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC) }

	t.Cleanup(func() { now = time.Now })

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "gitver.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{}\n"), 0o600))

	opts := &Options{
		Options: common.Options{
			ConfigPath: cfgPath,
			Dir:        dir,
			GitBinary:  filepath.Join(dir, "no-such-git"),
			Lookuper:   envconfig.MapLookuper(nil),
		},
	}

	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), opts, &out))
	require.Equal(t,
		"-X github.com/oshokin/gitver/internal/version.Version=0.0.0_UNKNOWN "+
			"-X github.com/oshokin/gitver/internal/version.Commit=none "+
			"-X github.com/oshokin/gitver/internal/version.BuildTime=2026-10-19T00:00:00Z\n",
		out.String())

	opts.Package = "bad path"
	require.ErrorIs(t, Run(context.Background(), opts, &out), errPackageHasSpace)
}
