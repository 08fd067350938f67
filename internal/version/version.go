package version

import "fmt"

// ImportPath is the import path of this package, the default target for "gitver ldflags".
const ImportPath = "github.com/oshokin/gitver/internal/version"

// Names of the variables set through -X linker flags.
const (
	VersionVar   = "Version"
	CommitVar    = "Commit"
	BuildTimeVar = "BuildTime"
)

var (
	// Version is the resolved package version of this build.
	Version = "0.0.0_UNKNOWN"
	// Commit is the short git SHA embedded at build time.
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Short returns only the version string.
func Short() string {
	return Version
}

// Full returns a human-readable line with version, commit and build time.
func Full() string {
	return fmt.Sprintf("gitver %s (commit %s, built %s)", Version, Commit, BuildTime)
}
