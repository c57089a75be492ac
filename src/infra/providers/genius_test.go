package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/features/config"
)

func geniusManager(baseURL string) *config.Manager {
	return config.NewManager(&config.Config{
		Providers: config.Providers{
			Genius: config.Provider{Enabled: true, BaseURL: baseURL},
		},
	})
}

func TestGenius_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"response":{"hits":[
			{"result":{"id":42,"title":"Amazing Grace","artist_names":"John Newton","path":"/John-newton-amazing-grace-lyrics"}},
			{"result":{"id":43,"title":"Other","artist_names":"Someone","path":""}}
		]}}`))
	}))
	defer server.Close()

	provider := NewGenius(geniusManager(server.URL))

	candidates, err := provider.Search(context.Background(), "amazing grace")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	// The hit without a path is dropped.
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	cand := candidates[0]
	if cand.ID != "/John-newton-amazing-grace-lyrics" {
		t.Errorf("unexpected candidate ID %q", cand.ID)
	}
	if cand.Title != "Amazing Grace" || cand.ArtistName != "John Newton" {
		t.Errorf("unexpected candidate %+v", cand)
	}
}

func TestGenius_LyricsByID(t *testing.T) {
	page := `<html><body>
		<div data-lyrics-container="true">[Verse 1]<br/>Amazing grace, how sweet the sound<br>That saved a &amp;wretch&#x27; like me</div>
	</body></html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/John-newton-amazing-grace-lyrics" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(page))
	}))
	defer server.Close()

	provider := NewGenius(geniusManager(server.URL))

	text, err := provider.LyricsByID(context.Background(), "/John-newton-amazing-grace-lyrics")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := "[Verse 1]\nAmazing grace, how sweet the sound\nThat saved a &wretch' like me"
	if text != want {
		t.Errorf("expected %q, got %q", want, text)
	}
}

func TestGenius_LyricsNotInPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>nothing here</p></body></html>`))
	}))
	defer server.Close()

	provider := NewGenius(geniusManager(server.URL))

	if _, err := provider.LyricsByID(context.Background(), "/whatever"); err == nil {
		t.Error("expected an error when the page has no lyrics container")
	}
}

func TestExtractLyricsFromHTML_MultipleContainers(t *testing.T) {
	page := `<div data-lyrics-container="true">[Verse 1]<br/>First part</div>
		<div data-lyrics-container="true">[Chorus]<br/>Second part</div>`

	text, err := extractLyricsFromHTML(page)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := "[Verse 1]\nFirst part\n[Chorus]\nSecond part"
	if text != want {
		t.Errorf("expected %q, got %q", want, text)
	}
}
