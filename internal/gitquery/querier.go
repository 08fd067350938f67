package gitquery

import "context"

// Querier defines the read-only repository queries needed for version resolution.
type Querier interface {
	// Describe returns the nearest reachable tag with commit distance,
	// short hash and dirty marker, e.g. "1.2-5-gabc1234-dirty".
	Describe(ctx context.Context) (string, error)

	// ShortHash returns the abbreviated hash of the current commit.
	ShortHash(ctx context.Context) (string, error)

	// Branch returns the current branch name.
	Branch(ctx context.Context) (string, error)
}
