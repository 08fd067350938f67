package gitquery

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"
)

const (
	// DefaultBinary is the git executable looked up in PATH.
	DefaultBinary = "git"
)

var (
	describeArgs  = []string{"describe", "--tags", "--long", "--dirty"}
	shortHashArgs = []string{"rev-parse", "--short", "HEAD"}
	branchArgs    = []string{"rev-parse", "--abbrev-ref", "HEAD"}
)

// CLI implements Querier by running the git binary.
type CLI struct {
	// binary is the git executable name or path.
	binary string
	// dir is the working directory git runs in. Empty means the process CWD.
	dir string
	// timeout bounds each git invocation. Zero means no bound.
	timeout time.Duration
}

// Option configures the CLI querier.
type Option func(*CLI)

// WithTimeout bounds each git invocation.
func WithTimeout(timeout time.Duration) Option {
	return func(c *CLI) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithDir runs git in the given working directory.
func WithDir(dir string) Option {
	return func(c *CLI) {
		c.dir = dir
	}
}

// NewCLI creates a querier for the given git binary.
func NewCLI(binary string, opts ...Option) *CLI {
	if binary == "" {
		binary = DefaultBinary
	}

	c := &CLI{
		binary: binary,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Describe runs "git describe --tags --long --dirty".
func (c *CLI) Describe(ctx context.Context) (string, error) {
	return c.run(ctx, describeArgs...)
}

// ShortHash runs "git rev-parse --short HEAD".
func (c *CLI) ShortHash(ctx context.Context) (string, error) {
	return c.run(ctx, shortHashArgs...)
}

// Branch runs "git rev-parse --abbrev-ref HEAD".
func (c *CLI) Branch(ctx context.Context) (string, error) {
	return c.run(ctx, branchArgs...)
}

// run executes git with args and returns trimmed stdout.
func (c *CLI) run(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := c.commandContext(ctx)
	defer cancel()

	//nolint:gosec // The binary comes from local configuration and arguments are fixed.
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Dir = c.dir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", newCommandError(args, err, stderr.String())
	}

	return strings.TrimSpace(stdout.String()), nil
}

// commandContext derives the context for a single invocation, applying the timeout if set.
func (c *CLI) commandContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}

	return context.WithCancel(ctx)
}
