// Package version contains the core domain types for version resolution.
//
// It defines Tier (which fallback level produced a version) and Resolution
// (the resolved version string plus the git facts it was built from).
package version
