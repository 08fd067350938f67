package version

import "strings"

const (
	// UnknownVersion is returned when no repository can be detected at all.
	UnknownVersion = "0.0.0_UNKNOWN"
	// UntaggedBase is the version prefix used for repositories without reachable tags.
	UntaggedBase = "0.0.0"
	// DirtySuffix is appended by git describe when the working tree has uncommitted changes.
	DirtySuffix = "-dirty"
)

// Tier identifies which fallback level produced a version.
type Tier int

const (
	// TierUnknown means no repository was detected.
	TierUnknown Tier = iota
	// TierUntagged means the repository has commits but no reachable tag.
	TierUntagged
	// TierTagged means a reachable tag was found.
	TierTagged
)

// String returns the lowercase tier name used in logs and build metadata.
func (t Tier) String() string {
	switch t {
	case TierTagged:
		return "tagged"
	case TierUntagged:
		return "untagged"
	default:
		return "unknown"
	}
}

// Resolution is the result of a single version resolution.
type Resolution struct {
	// Tier is the fallback level that produced Version.
	Tier Tier
	// Version is the final, never empty, version string.
	Version string
	// Tag is the nearest reachable tag (tagged tier only).
	Tag string
	// Commits is the literal commit distance reported by git (tagged tier only).
	Commits string
	// SHA is the short commit hash, possibly carrying DirtySuffix.
	SHA string
	// Dirty reports whether the working tree had uncommitted changes.
	Dirty bool
	// Branch is the current branch name (untagged tier only).
	Branch string
}

// Clone returns a copy of the resolution.
func (r *Resolution) Clone() *Resolution {
	if r == nil {
		return nil
	}

	cloned := *r

	return &cloned
}

// Commit returns the short hash without the dirty marker.
func (r *Resolution) Commit() string {
	return strings.TrimSuffix(r.SHA, DirtySuffix)
}
