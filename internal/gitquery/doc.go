// Package gitquery exposes the read-only git queries used to resolve a version.
//
// Querier is the abstraction the resolver depends on. CLI implements it by
// running the git binary; every failed invocation is reported as a
// *CommandError matching ErrCommandFailed.
package gitquery
