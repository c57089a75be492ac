package search

import (
	"sort"
	"strings"

	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/lyrics"
	"github.com/gosimple/unidecode"
)

type scoredCandidate struct {
	lyrics.Candidate
	score int
}

// rankCandidates picks the best search result for the parsed query.
// A non-empty candidate list always yields a winner: ties keep the
// provider's own search order, so when nothing scores, the first
// result wins.
func rankCandidates(candidates []lyrics.Candidate, parsed lyrics.ParsedQuery, rawQuery string) (lyrics.Candidate, bool) {
	if len(candidates) == 0 {
		return lyrics.Candidate{}, false
	}

	scored := make([]scoredCandidate, 0, len(candidates))
	for _, cand := range candidates {
		scored = append(scored, scoredCandidate{cand, scoreCandidate(cand, parsed, rawQuery)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	return scored[0].Candidate, true
}

// scoreCandidate scores one candidate: 2 points when the candidate title
// contains the parsed title (or the raw query when the query was never
// split), plus 1 point when the candidate artist contains the parsed
// artist. The artist point is added whether or not the title matched.
func scoreCandidate(cand lyrics.Candidate, parsed lyrics.ParsedQuery, rawQuery string) int {
	wantTitle := parsed.Title
	if wantTitle == "" {
		wantTitle = rawQuery
	}

	score := 0
	if strings.Contains(fold(cand.Title), fold(wantTitle)) {
		score += 2
	}
	if parsed.Artist != "" && cand.ArtistName != "" &&
		strings.Contains(fold(cand.ArtistName), fold(parsed.Artist)) {
		score++
	}
	return score
}

// fold normalizes a string for containment checks: diacritics are
// transliterated to ASCII before lowercasing.
func fold(s string) string {
	return strings.ToLower(unidecode.Unidecode(s))
}
