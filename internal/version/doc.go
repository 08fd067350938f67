// Package version exposes gitver's own build metadata.
//
// Version, Commit and BuildTime are injected at build time via Go ldflags,
// typically with the flags printed by "gitver ldflags". The defaults describe
// a local development build.
package version
