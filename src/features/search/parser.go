package search

import (
	"regexp"
	"strings"

	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/lyrics"
)

var byPattern = regexp.MustCompile(`(?i)^(.+) by (.+)$`)

// ParseQuery turns a freeform search string into structured
// artist/title candidates. It never fails: a query with no recognized
// separator comes back as a single freeform title.
//
// Recognized shapes, tried in order:
//   - "<title> by <artist>" (case-insensitive)
//   - "<part> - <part>" with exactly one " - ": the artist-title reading
//     is primary and the swapped title-artist reading is kept as the
//     alternate, since string shape alone can't tell the two apart.
func ParseQuery(raw string) lyrics.ParsedQuery {
	q := strings.Join(strings.Fields(raw), " ")

	if m := byPattern.FindStringSubmatch(q); m != nil {
		return lyrics.ParsedQuery{Title: m[1], Artist: m[2]}
	}

	if strings.Count(q, " - ") == 1 {
		parts := strings.SplitN(q, " - ", 2)
		return lyrics.ParsedQuery{
			Title:  parts[1],
			Artist: parts[0],
			Alternate: &lyrics.Interpretation{
				Title:  parts[0],
				Artist: parts[1],
			},
		}
	}

	return lyrics.ParsedQuery{Title: q}
}
