// Package common holds helpers shared by several services.
//
// It merges configuration from file, environment and flags, applies the log
// level and builds the resolver every command runs.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
