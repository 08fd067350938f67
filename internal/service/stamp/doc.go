// Package stamp writes the build metadata file consumed by the packaging step.
//
// It resolves the version, records the git facts it was derived from and
// persists them as YAML through the buildinfo repository.
package stamp
