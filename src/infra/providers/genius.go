package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/features/config"
	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/lyrics"
)

// Genius API response structures
type geniusSearchResponse struct {
	Response struct {
		Hits []geniusHit `json:"hits"`
	} `json:"response"`
}

type geniusHit struct {
	Result geniusSong `json:"result"`
}

type geniusSong struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ArtistNames string `json:"artist_names"`
	Path        string `json:"path"`
}

var (
	lyricsContainers = []*regexp.Regexp{
		regexp.MustCompile(`(?s)<div[^>]*data-lyrics-container="true"[^>]*>(.*?)</div>`),
		regexp.MustCompile(`(?s)<div[^>]*class="Lyrics__Container[^"]*"[^>]*>(.*?)</div>`),
		regexp.MustCompile(`(?s)<div[^>]*class="song_body-lyrics"[^>]*>(.*?)</div>`),
	}
	brTag  = regexp.MustCompile(`(?i)<br\s*/?>`)
	anyTag = regexp.MustCompile(`<[^>]*>`)
	entity = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&#x27;", "'", "&#39;", "'", "&apos;", "'")
)

// Genius is the secondary, search-based lyrics provider. Search hits come
// from the public JSON search endpoint; lyrics bodies are scraped from the
// song page. The extracted text keeps Genius's banner and footer noise:
// cleanup belongs to the sanitizer.
type Genius struct {
	config *config.Manager
	client *http.Client
}

// NewGenius creates a new Genius provider.
func NewGenius(cfg *config.Manager) *Genius {
	return &Genius{
		config: cfg,
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
	}
}

func (p *Genius) Name() string { return "genius" }

func (p *Genius) Enabled() bool { return p.config.Get().Providers.Genius.Enabled }

// Search returns candidate songs for the query. The candidate ID is the
// song's page path, which LyricsByID resolves against the base URL.
func (p *Genius) Search(ctx context.Context, query string) ([]lyrics.Candidate, error) {
	base := p.config.Get().Providers.Genius.BaseURL
	searchURL := fmt.Sprintf("%s/api/search?q=%s", base, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, "GET", searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Genius API request failed with status %d", resp.StatusCode)
	}

	var searchResp geniusSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	candidates := make([]lyrics.Candidate, 0, len(searchResp.Response.Hits))
	for _, hit := range searchResp.Response.Hits {
		if hit.Result.Path == "" {
			continue
		}
		candidates = append(candidates, lyrics.Candidate{
			ID:         hit.Result.Path,
			Title:      hit.Result.Title,
			ArtistName: hit.Result.ArtistNames,
		})
	}
	return candidates, nil
}

// LyricsByID fetches a song page by its path and extracts the raw lyrics.
func (p *Genius) LyricsByID(ctx context.Context, id string) (string, error) {
	base := p.config.Get().Providers.Genius.BaseURL
	pageURL := base + id

	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch lyrics page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("lyrics page request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read lyrics page: %w", err)
	}

	text, err := extractLyricsFromHTML(string(body))
	if err != nil {
		return "", fmt.Errorf("failed to extract lyrics: %w", err)
	}
	return text, nil
}

// extractLyricsFromHTML pulls the lyrics text out of a Genius song page.
// Line breaks are preserved by converting <br> tags before stripping the
// remaining markup.
func extractLyricsFromHTML(html string) (string, error) {
	var parts []string
	for _, re := range lyricsContainers {
		for _, match := range re.FindAllStringSubmatch(html, -1) {
			if clean := cleanLyricsHTML(match[1]); clean != "" {
				parts = append(parts, clean)
			}
		}
		if len(parts) > 0 {
			break
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("lyrics not found in page")
	}

	return strings.Join(parts, "\n"), nil
}

// cleanLyricsHTML converts a lyrics container fragment to plain text.
func cleanLyricsHTML(fragment string) string {
	text := brTag.ReplaceAllString(fragment, "\n")
	text = anyTag.ReplaceAllString(text, "")
	text = entity.Replace(text)
	return strings.TrimSpace(text)
}
