package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/features/config"
)

const userAgent = "LyricFinder/1.0 (https://github.com/Daniel-Faria-Filho/Lyric-Finder)"

// LRCLib API response structures
type lrclibSong struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Artist       string  `json:"artistName"`
	Album        string  `json:"albumName"`
	Duration     float64 `json:"duration"`
	PlainLyrics  string  `json:"plainLyrics"`
	SyncedLyrics string  `json:"syncedLyrics"`
}

// LRCLib is the primary lyrics provider. It answers (artist, title)
// lookups through LRCLib's /api/get endpoint and freeform queries
// through /api/search.
type LRCLib struct {
	config *config.Manager
	client *http.Client
}

// NewLRCLib creates a new LRCLib provider.
func NewLRCLib(cfg *config.Manager) *LRCLib {
	return &LRCLib{
		config: cfg,
		client: &http.Client{},
	}
}

func (p *LRCLib) Name() string { return "lrclib" }

func (p *LRCLib) Enabled() bool { return p.config.Get().Providers.LRCLib.Enabled }

// Lookup fetches lyrics for an (artist, title) pair, or runs a freeform
// search when artist is empty. A clean provider miss is ("", nil).
func (p *LRCLib) Lookup(ctx context.Context, artist string, title string) (string, error) {
	if artist == "" {
		return p.searchFreeform(ctx, title)
	}

	base := p.config.Get().Providers.LRCLib.BaseURL
	getURL := fmt.Sprintf("%s/api/get?artist_name=%s&track_name=%s",
		base, url.QueryEscape(artist), url.QueryEscape(title))

	req, err := http.NewRequestWithContext(ctx, "GET", getURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	// LRCLib answers 404 when it simply doesn't know the song.
	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LRCLib API request failed with status %d", resp.StatusCode)
	}

	var song lrclibSong
	if err := json.NewDecoder(resp.Body).Decode(&song); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return lyricsFromSong(song), nil
}

// searchFreeform runs the whole query through LRCLib's search endpoint
// and takes the first hit.
func (p *LRCLib) searchFreeform(ctx context.Context, query string) (string, error) {
	base := p.config.Get().Providers.LRCLib.BaseURL
	searchURL := fmt.Sprintf("%s/api/search?q=%s", base, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, "GET", searchURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LRCLib API request failed with status %d", resp.StatusCode)
	}

	var songs []lrclibSong
	if err := json.NewDecoder(resp.Body).Decode(&songs); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(songs) == 0 {
		return "", nil
	}

	return lyricsFromSong(songs[0]), nil
}

// lyricsFromSong prefers plain lyrics and falls back to de-timestamped
// synced lyrics.
func lyricsFromSong(song lrclibSong) string {
	if song.PlainLyrics != "" {
		return song.PlainLyrics
	}
	if song.SyncedLyrics != "" {
		return extractPlainFromSynced(song.SyncedLyrics)
	}
	return ""
}

// extractPlainFromSynced strips LRC timestamps: "[00:05.00] line" -> "line".
func extractPlainFromSynced(synced string) string {
	lines := strings.Split(synced, "\n")
	var plain []string

	for _, line := range lines {
		if strings.Contains(line, "]") {
			parts := strings.SplitN(line, "]", 2)
			if len(parts) == 2 {
				plain = append(plain, strings.TrimSpace(parts[1]))
			}
		}
	}

	return strings.Join(plain, "\n")
}
