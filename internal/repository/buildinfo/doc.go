// Package buildinfo persists build metadata documents.
//
// The FileRepository stores and loads a Document as YAML on disk, next to the
// build artifacts that the packaging step picks up.
package buildinfo
