package search

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/features/metrics"
	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/lyrics"
	"github.com/google/uuid"
)

// ErrInternal is returned when the pipeline hit an unexpected fault.
// Callers render it as a generic error; the underlying panic is only
// logged.
var ErrInternal = errors.New("search pipeline failed")

// Service runs the lyrics search pipeline: parse the query, walk the
// provider chain until one source yields text, sanitize, return.
type Service struct {
	primary   lyrics.DirectProvider
	secondary lyrics.SearchProvider
	recorder  *metrics.Recorder
}

// NewService creates a new search service. recorder may be nil.
func NewService(primary lyrics.DirectProvider, secondary lyrics.SearchProvider, recorder *metrics.Recorder) *Service {
	return &Service{
		primary:   primary,
		secondary: secondary,
		recorder:  recorder,
	}
}

// Find resolves a raw query to a lyrics result. The query must be
// trimmed and non-empty; that is the caller's contract. An empty result
// with a nil error means no provider had lyrics, which is a normal
// outcome, not a failure.
func (s *Service) Find(ctx context.Context, rawQuery string) (result lyrics.Result, err error) {
	searchID := uuid.New().String()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Search pipeline panicked", "searchID", searchID, "query", rawQuery, "panic", r)
			result = lyrics.Result{}
			err = ErrInternal
		}
	}()

	parsed := ParseQuery(rawQuery)
	slog.Debug("Parsed query", "searchID", searchID, "title", parsed.Title, "artist", parsed.Artist, "hasAlternate", parsed.Alternate != nil)

	raw, provenance := s.lookup(ctx, searchID, rawQuery, parsed)
	if raw == "" {
		slog.Info("No lyrics found", "searchID", searchID, "query", rawQuery)
		s.recorder.SearchFinished(metrics.OutcomeNotFound)
		return lyrics.Result{}, nil
	}

	text := SanitizeLyrics(raw, provenance)
	if text == "" {
		// Sanitization can eat a result that was nothing but noise.
		slog.Info("Lyrics were empty after sanitization", "searchID", searchID, "query", rawQuery, "provenance", provenance)
		s.recorder.SearchFinished(metrics.OutcomeNotFound)
		return lyrics.Result{}, nil
	}

	slog.Info("Lyrics found", "searchID", searchID, "query", rawQuery, "provenance", provenance, "lyricsLength", len(text))
	s.recorder.SearchFinished(metrics.OutcomeFound)
	return lyrics.Result{Text: text, Provenance: provenance}, nil
}

// lookup walks the provider chain in fixed order and returns the first
// non-empty raw text with its provenance tag. A provider error is a miss
// for that step only; the chain always proceeds.
func (s *Service) lookup(ctx context.Context, searchID, rawQuery string, parsed lyrics.ParsedQuery) (string, string) {
	if parsed.Artist != "" {
		if text := s.tryPrimary(ctx, searchID, "parsed", parsed.Artist, parsed.Title); text != "" {
			return text, lyrics.ProvenancePrimaryParsed
		}
	}

	if parsed.Alternate != nil {
		if text := s.tryPrimary(ctx, searchID, "alt", parsed.Alternate.Artist, parsed.Alternate.Title); text != "" {
			return text, lyrics.ProvenancePrimaryAlt
		}
	}

	if text := s.tryPrimary(ctx, searchID, "freeform", "", rawQuery); text != "" {
		return text, lyrics.ProvenancePrimaryFreeform
	}

	if text := s.trySecondary(ctx, searchID, rawQuery, parsed); text != "" {
		return text, lyrics.ProvenanceSecondary
	}

	return "", ""
}

// tryPrimary runs one direct-provider step. Returns "" on miss, error or
// disabled provider.
func (s *Service) tryPrimary(ctx context.Context, searchID, mode, artist, title string) string {
	if s.primary == nil || !s.primary.Enabled() {
		return ""
	}

	start := time.Now()
	text, err := s.primary.Lookup(ctx, artist, title)
	elapsed := time.Since(start)

	if err != nil {
		slog.Warn("Primary provider lookup failed", "searchID", searchID, "provider", s.primary.Name(), "mode", mode, "error", err)
		s.recorder.ProviderAttempt(s.primary.Name(), mode, metrics.OutcomeError, elapsed)
		return ""
	}

	outcome := metrics.OutcomeMiss
	if text != "" {
		outcome = metrics.OutcomeHit
		slog.Debug("Primary provider hit", "searchID", searchID, "provider", s.primary.Name(), "mode", mode, "lyricsLength", len(text))
	}
	s.recorder.ProviderAttempt(s.primary.Name(), mode, outcome, elapsed)
	return text
}

// trySecondary runs the search-based step: search, rank, fetch the
// winning candidate's lyrics body.
func (s *Service) trySecondary(ctx context.Context, searchID, rawQuery string, parsed lyrics.ParsedQuery) string {
	if s.secondary == nil || !s.secondary.Enabled() {
		return ""
	}

	start := time.Now()
	candidates, err := s.secondary.Search(ctx, rawQuery)
	if err != nil {
		slog.Warn("Secondary provider search failed", "searchID", searchID, "provider", s.secondary.Name(), "error", err)
		s.recorder.ProviderAttempt(s.secondary.Name(), "search", metrics.OutcomeError, time.Since(start))
		return ""
	}

	best, ok := rankCandidates(candidates, parsed, rawQuery)
	if !ok {
		s.recorder.ProviderAttempt(s.secondary.Name(), "search", metrics.OutcomeMiss, time.Since(start))
		return ""
	}
	slog.Debug("Ranked secondary candidates", "searchID", searchID, "candidates", len(candidates), "chosenID", best.ID, "chosenTitle", best.Title, "chosenArtist", best.ArtistName)

	text, err := s.secondary.LyricsByID(ctx, best.ID)
	elapsed := time.Since(start)
	if err != nil {
		slog.Warn("Secondary provider fetch failed", "searchID", searchID, "provider", s.secondary.Name(), "candidateID", best.ID, "error", err)
		s.recorder.ProviderAttempt(s.secondary.Name(), "search", metrics.OutcomeError, elapsed)
		return ""
	}

	outcome := metrics.OutcomeMiss
	if text != "" {
		outcome = metrics.OutcomeHit
	}
	s.recorder.ProviderAttempt(s.secondary.Name(), "search", outcome, elapsed)
	return text
}
