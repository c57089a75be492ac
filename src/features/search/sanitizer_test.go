package search

import (
	"testing"

	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/lyrics"
)

func TestSanitizeLyrics_ContributorBanner(t *testing.T) {
	input := "21 ContributorsHow Great Is Our God Lyrics[Verse 1]\nLine one\n\n\n\nLine two\n5Embed"
	want := "[Verse 1]\nLine one\n\nLine two"

	got := SanitizeLyrics(input, lyrics.ProvenancePrimaryParsed)
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSanitizeLyrics_GenericHeader(t *testing.T) {
	input := "How Great Is Our God Lyrics\n[Chorus]\nLine one"
	want := "[Chorus]\nLine one"

	got := SanitizeLyrics(input, lyrics.ProvenancePrimaryParsed)
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSanitizeLyrics_Teasers(t *testing.T) {
	input := "[Verse 1]\nLine one\nRead More of this song here\nLine two\nYou might also like these songs\nLine three"
	want := "[Verse 1]\nLine one\n\nLine two\n\nLine three"

	got := SanitizeLyrics(input, lyrics.ProvenancePrimaryParsed)
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSanitizeLyrics_CarriageReturns(t *testing.T) {
	got := SanitizeLyrics("[Verse 1]\r\nLine one\r\nLine two", lyrics.ProvenancePrimaryParsed)
	want := "[Verse 1]\nLine one\nLine two"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSanitizeLyrics_TrimsToEarliestHeader(t *testing.T) {
	// Verse 1 wins over the chorus that appears first.
	input := "junk before\n[Chorus]\nchorus line\n[Verse 1]\nverse line"
	got := SanitizeLyrics(input, lyrics.ProvenancePrimaryParsed)
	if got != "[Verse 1]\nverse line" {
		t.Errorf("expected trim to the verse 1 header, got %q", got)
	}

	// Without any verse, the first known header wins.
	input = "junk before\n[Chorus]\nchorus line"
	got = SanitizeLyrics(input, lyrics.ProvenancePrimaryParsed)
	if got != "[Chorus]\nchorus line" {
		t.Errorf("expected trim to the chorus header, got %q", got)
	}
}

func TestSanitizeLyrics_SecondaryPostPass(t *testing.T) {
	// "[Verse 10]" satisfies the first pass's verse-1 search at offset
	// zero, so the real [Verse 1] further in survives it. The secondary
	// post-pass catches it; primary text keeps the first pass's result.
	input := "[Verse 10]\nintro line\n[Verse 1]\nverse line"

	got := SanitizeLyrics(input, lyrics.ProvenanceSecondary)
	if got != "[Verse 1]\nverse line" {
		t.Errorf("expected secondary post-pass trim, got %q", got)
	}

	got = SanitizeLyrics(input, lyrics.ProvenancePrimaryParsed)
	if got != input {
		t.Errorf("expected primary text unchanged, got %q", got)
	}
}

func TestSanitizeLyrics_EmptyPassthrough(t *testing.T) {
	if got := SanitizeLyrics("", lyrics.ProvenanceSecondary); got != "" {
		t.Errorf("expected empty input to pass through, got %q", got)
	}
}

func TestSanitizeLyrics_Idempotent(t *testing.T) {
	inputs := []string{
		"21 ContributorsHow Great Is Our God Lyrics[Verse 1]\nLine one\n\n\n\nLine two\n5Embed",
		"Some Song Lyrics\n[Verse 1]\nLine one\nRead More here\nLine two\nEmbed",
		"[Intro]\nintro\n[Verse 1]\nverse\n\n\n\n[Chorus]\nchorus",
		"no headers at all\njust lines\n",
		"",
	}

	for _, provenance := range []string{lyrics.ProvenancePrimaryParsed, lyrics.ProvenanceSecondary} {
		for _, input := range inputs {
			once := SanitizeLyrics(input, provenance)
			twice := SanitizeLyrics(once, provenance)
			if once != twice {
				t.Errorf("sanitize not idempotent for %q (%s): first %q, second %q", input, provenance, once, twice)
			}
		}
	}
}
