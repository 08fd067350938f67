package resolver

import (
	"context"
	"errors"

	"github.com/oshokin/gitver/internal/gitquery"
)

// fakeQuerier returns canned answers and counts calls.
type fakeQuerier struct {
	describe     string
	describeErr  error
	shortHash    string
	shortHashErr error
	branch       string
	branchErr    error

	describeCalls  int
	shortHashCalls int
	branchCalls    int
}

var _ gitquery.Querier = (*fakeQuerier)(nil)

func (f *fakeQuerier) Describe(context.Context) (string, error) {
	f.describeCalls++

	return f.describe, f.describeErr
}

func (f *fakeQuerier) ShortHash(context.Context) (string, error) {
	f.shortHashCalls++

	return f.shortHash, f.shortHashErr
}

func (f *fakeQuerier) Branch(context.Context) (string, error) {
	f.branchCalls++

	return f.branch, f.branchErr
}

// commandFailure builds the error the CLI querier returns for a non-zero exit.
func commandFailure(args ...string) error {
	return &gitquery.CommandError{
		Args:     args,
		ExitCode: 128,
		Stderr:   "fatal: not a git repository (or any of the parent directories): .git",
		Err:      errors.New("exit status 128"),
	}
}
