package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "github.com/oshokin/gitver/internal/domain/version"
	"github.com/oshokin/gitver/internal/gitquery"
	"github.com/oshokin/gitver/internal/logger"
)

const describeSeparator = "-"

var (
	// ErrBranchLookup wraps a failure of the branch query after the short hash was found.
	ErrBranchLookup = errors.New("branch lookup failed")
	// ErrMalformedDescribe is returned when describe output has fewer than three parts.
	ErrMalformedDescribe = errors.New("malformed describe output")
)

// Resolver turns repository state into a version string.
type Resolver struct {
	// querier runs the repository queries.
	querier gitquery.Querier
	// tolerateBranchError sends branch lookup failures to the unknown tier.
	tolerateBranchError bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTolerateBranchError makes a failing branch lookup fall through to
// domain.UnknownVersion instead of being returned as an error.
func WithTolerateBranchError(enabled bool) Option {
	return func(r *Resolver) {
		r.tolerateBranchError = enabled
	}
}

// New creates a Resolver backed by querier.
func New(querier gitquery.Querier, opts ...Option) *Resolver {
	r := &Resolver{
		querier: querier,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Version resolves and returns only the version string.
func (r *Resolver) Version(ctx context.Context) (string, error) {
	res, err := r.Resolve(ctx)
	if err != nil {
		return "", err
	}

	return res.Version, nil
}

// Resolve runs the tiers in order and returns the first successful resolution.
func (r *Resolver) Resolve(ctx context.Context) (*domain.Resolution, error) {
	raw, err := r.querier.Describe(ctx)
	if err == nil {
		res, parseErr := ParseDescribe(raw)
		if parseErr != nil {
			return nil, parseErr
		}

		logger.DebugKV(ctx, "Resolved version from tag", "tag", res.Tag, "commits", res.Commits, "sha", res.SHA)

		return res, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	logger.DebugKV(ctx, "No reachable tag, trying commit hash", "error", err)

	sha, err := r.querier.ShortHash(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		logger.DebugKV(ctx, "No repository detected", "error", err)

		return unknown(), nil
	}

	branch, err := r.querier.Branch(ctx)
	if err != nil {
		if !r.tolerateBranchError || ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrBranchLookup, err)
		}

		logger.WarnKV(ctx, "Branch lookup failed, using unknown version", "sha", sha, "error", err)

		return unknown(), nil
	}

	res := &domain.Resolution{
		Tier:    domain.TierUntagged,
		Version: fmt.Sprintf("%s+%s_%s", domain.UntaggedBase, sha, branch),
		SHA:     sha,
		Branch:  branch,
	}

	logger.DebugKV(ctx, "Resolved version without tag", "sha", sha, "branch", branch)

	return res, nil
}

// ParseDescribe converts "{tag}-{commits}-{sha}" into a tagged resolution.
// Only the first two separators split; anything after them, including a
// dirty marker, stays in the sha part.
func ParseDescribe(raw string) (*domain.Resolution, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), describeSeparator, 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedDescribe, raw)
	}

	tag, commits, sha := parts[0], parts[1], parts[2]

	return &domain.Resolution{
		Tier:    domain.TierTagged,
		Version: fmt.Sprintf("%s.%s+%s", tag, commits, sha),
		Tag:     tag,
		Commits: commits,
		SHA:     sha,
		Dirty:   strings.HasSuffix(sha, domain.DirtySuffix),
	}, nil
}

// unknown returns the resolution used when no repository is detected.
func unknown() *domain.Resolution {
	return &domain.Resolution{
		Tier:    domain.TierUnknown,
		Version: domain.UnknownVersion,
	}
}
