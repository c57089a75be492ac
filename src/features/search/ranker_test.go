package search

import (
	"testing"

	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/lyrics"
)

func TestRankCandidates_TitleAndArtistMatchWins(t *testing.T) {
	parsed := lyrics.ParsedQuery{Title: "Amazing Grace", Artist: "John Newton"}
	candidates := []lyrics.Candidate{
		{ID: "2", Title: "Something Else", ArtistName: "John Newton"},
		{ID: "1", Title: "Amazing Grace", ArtistName: "John Newton"},
	}

	best, ok := rankCandidates(candidates, parsed, "Amazing Grace by John Newton")
	if !ok {
		t.Fatal("expected a candidate")
	}
	if best.ID != "1" {
		t.Errorf("expected candidate 1 to win, got %s (%q)", best.ID, best.Title)
	}
}

func TestRankCandidates_EmptyList(t *testing.T) {
	_, ok := rankCandidates(nil, lyrics.ParsedQuery{Title: "x"}, "x")
	if ok {
		t.Error("expected no candidate for an empty list")
	}
}

func TestRankCandidates_TiesKeepSearchOrder(t *testing.T) {
	parsed := lyrics.ParsedQuery{Title: "nothing matches this"}
	candidates := []lyrics.Candidate{
		{ID: "first", Title: "Song A", ArtistName: "Artist A"},
		{ID: "second", Title: "Song B", ArtistName: "Artist B"},
	}

	best, ok := rankCandidates(candidates, parsed, "nothing matches this")
	if !ok {
		t.Fatal("expected a candidate even when nothing scores")
	}
	if best.ID != "first" {
		t.Errorf("expected the first search result to win ties, got %s", best.ID)
	}
}

// The artist point is summed independently of the title check: a
// candidate whose title doesn't match but whose artist does still scores
// 1 and outranks a zero-score candidate.
func TestScoreCandidate_ArtistBonusIndependent(t *testing.T) {
	parsed := lyrics.ParsedQuery{Title: "Amazing Grace", Artist: "John Newton"}

	full := scoreCandidate(lyrics.Candidate{Title: "Amazing Grace", ArtistName: "John Newton"}, parsed, "")
	if full != 3 {
		t.Errorf("expected score 3 for title+artist match, got %d", full)
	}

	artistOnly := scoreCandidate(lyrics.Candidate{Title: "Something Else", ArtistName: "John Newton"}, parsed, "")
	if artistOnly != 1 {
		t.Errorf("expected score 1 for artist-only match, got %d", artistOnly)
	}

	noMatch := scoreCandidate(lyrics.Candidate{Title: "Something Else", ArtistName: "Someone Else"}, parsed, "")
	if noMatch != 0 {
		t.Errorf("expected score 0 for no match, got %d", noMatch)
	}

	if artistOnly <= noMatch {
		t.Error("artist-only candidate should outrank a no-match candidate")
	}
}

func TestScoreCandidate_FreeformUsesRawQuery(t *testing.T) {
	parsed := lyrics.ParsedQuery{}

	score := scoreCandidate(lyrics.Candidate{Title: "Bohemian Rhapsody (Remastered)"}, parsed, "bohemian rhapsody")
	if score != 2 {
		t.Errorf("expected score 2 from raw-query title match, got %d", score)
	}
}

func TestScoreCandidate_FoldsDiacritics(t *testing.T) {
	parsed := lyrics.ParsedQuery{Title: "Voila", Artist: "Barbara Pravi"}

	score := scoreCandidate(lyrics.Candidate{Title: "Voilà", ArtistName: "Barbara Pravi"}, parsed, "")
	if score != 3 {
		t.Errorf("expected accented title to match, got score %d", score)
	}
}
