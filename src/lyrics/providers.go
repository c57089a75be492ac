package lyrics

import "context"

// DirectProvider is a lyrics source that returns lyrics text directly for
// an (artist, title) pair. Passing an empty artist puts the provider in
// freeform mode: title carries the whole raw query.
type DirectProvider interface {
	// Lookup returns the lyrics text, or "" when the provider has no match.
	Lookup(ctx context.Context, artist string, title string) (string, error)

	// Name returns the provider name.
	Name() string

	// Enabled returns whether the provider is enabled in configuration.
	Enabled() bool
}

// SearchProvider is a lyrics source that must be searched first: Search
// returns candidate songs and LyricsByID fetches the lyrics body of the
// chosen candidate.
type SearchProvider interface {
	// Search returns candidate songs for the query, in the provider's
	// own relevance order. An empty slice means no matches.
	Search(ctx context.Context, query string) ([]Candidate, error)

	// LyricsByID fetches the raw lyrics body for a candidate ID.
	LyricsByID(ctx context.Context, id string) (string, error)

	// Name returns the provider name.
	Name() string

	// Enabled returns whether the provider is enabled in configuration.
	Enabled() bool
}
