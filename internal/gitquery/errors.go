package gitquery

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrCommandFailed matches every *CommandError under errors.Is.
var ErrCommandFailed = errors.New("git command failed")

// CommandError describes a git invocation that did not exit successfully.
type CommandError struct {
	// Args are the git arguments, without the binary name.
	Args []string
	// ExitCode is the process exit status, or -1 if the process never exited normally.
	ExitCode int
	// Stderr is the trimmed standard error output of the process.
	Stderr string
	// Err is the underlying exec error.
	Err error
}

func newCommandError(args []string, err error, stderr string) *CommandError {
	exitCode := -1

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return &CommandError{
		Args:     args,
		ExitCode: exitCode,
		Stderr:   strings.TrimSpace(stderr),
		Err:      err,
	}
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}

	return msg
}

// Unwrap returns the underlying exec error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrCommandFailed.
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}
