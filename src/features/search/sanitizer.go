package search

import (
	"regexp"
	"strings"

	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/lyrics"
)

var (
	// "21 ContributorsSome Song Title Lyrics" banner at the very start.
	contributorBanner = regexp.MustCompile(`(?is)^\d+ ?Contributors?.*?Lyrics`)
	// Any other leading run ending in "Lyrics", confined to the first line.
	genericHeader  = regexp.MustCompile(`(?i)^[^\n]*Lyrics`)
	readMoreTeaser = regexp.MustCompile(`Read More[^\n]*`)
	alsoLikeTeaser = regexp.MustCompile(`You might also like[^\n]*`)
	embedFooter    = regexp.MustCompile(`\d*Embed\s*$`)
	blankRun       = regexp.MustCompile(`\n{3,}`)

	verseOneHeader = regexp.MustCompile(`(?i)\[verse 1[^\]]*\]`)
	anyVerseHeader = regexp.MustCompile(`(?i)\[verse[^\]]*\]`)
	knownHeader    = regexp.MustCompile(`(?i)\[(?:verse|chorus|intro|bridge|pre-chorus|refrain|outro)[^\]]*\]`)
	verseOneExact  = regexp.MustCompile(`(?i)\[verse 1\]`)
)

// SanitizeLyrics strips provider noise from raw lyrics text: contributor
// banners, "Read More" and "You might also like" teasers, the trailing
// "Embed" footer, and anything before the first structural section
// header. Runs of blank lines collapse to one. Never fails; empty input
// passes through unchanged.
//
// When the text came from the search-based provider a second header trim
// runs on the cleaned text, since that provider's formatting can carry a
// `[Verse 1]` past the first pass.
func SanitizeLyrics(text string, provenance string) string {
	if text == "" {
		return text
	}

	text = strings.ReplaceAll(text, "\r", "")

	if m := contributorBanner.FindString(text); m != "" {
		text = text[len(m):]
	} else if m := genericHeader.FindString(text); m != "" {
		text = text[len(m):]
	}

	text = readMoreTeaser.ReplaceAllString(text, "")
	text = alsoLikeTeaser.ReplaceAllString(text, "")
	text = embedFooter.ReplaceAllString(text, "")

	text = trimToFirstHeader(text)

	text = blankRun.ReplaceAllString(text, "\n\n")
	text = strings.TrimSpace(text)

	if provenance == lyrics.ProvenanceSecondary {
		if loc := verseOneExact.FindStringIndex(text); loc != nil && loc[0] > 0 {
			text = text[loc[0]:]
		}
	}

	return text
}

// trimToFirstHeader discards everything before the first structural
// section header. A verse-1 header takes priority over any verse header,
// which takes priority over any known header.
func trimToFirstHeader(text string) string {
	for _, re := range []*regexp.Regexp{verseOneHeader, anyVerseHeader, knownHeader} {
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if loc[0] > 0 {
			return text[loc[0]:]
		}
		return text
	}
	return text
}
