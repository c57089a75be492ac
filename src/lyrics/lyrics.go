// Package lyrics holds the domain types shared by the search pipeline and
// the provider adapters. Everything here is request-local: a query comes
// in, a Result goes out, nothing survives the request.
package lyrics

// Interpretation is one (title, artist) reading of a freeform query.
type Interpretation struct {
	Title  string
	Artist string
}

// ParsedQuery is the structured form of a freeform search string.
// An empty Artist means the query could not be split and only Title
// (the whole normalized query) should be used. Alternate is set only
// when the query was ambiguous between two orderings ("A - B" could be
// artist-title or title-artist) and carries the swapped reading.
type ParsedQuery struct {
	Title     string
	Artist    string
	Alternate *Interpretation
}

// Freeform reports whether the query had no recognized separator.
func (q ParsedQuery) Freeform() bool {
	return q.Artist == "" && q.Alternate == nil
}

// Candidate is a single hit from a search-based provider, kept only long
// enough to be ranked against the parsed query.
type Candidate struct {
	ID         string
	Title      string
	ArtistName string
}

// Result is the pipeline's final output. An empty Text means no lyrics
// were found anywhere in the provider chain; Provenance records which
// provider and query mode produced the text.
type Result struct {
	Text       string `json:"text"`
	Provenance string `json:"provenance"`
}

// Found reports whether the result carries lyrics.
func (r Result) Found() bool {
	return r.Text != ""
}

// Provenance tags for the provider chain steps.
const (
	ProvenancePrimaryParsed   = "primary:parsed"
	ProvenancePrimaryAlt      = "primary:alt"
	ProvenancePrimaryFreeform = "primary:freeform"
	ProvenanceSecondary       = "secondary"
)
