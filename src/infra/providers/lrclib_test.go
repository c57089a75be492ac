package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/features/config"
)

func lrclibManager(baseURL string) *config.Manager {
	return config.NewManager(&config.Config{
		Providers: config.Providers{
			LRCLib: config.Provider{Enabled: true, BaseURL: baseURL},
		},
	})
}

func TestLRCLib_LookupByArtistAndTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/get" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("artist_name"); got != "John Newton" {
			t.Errorf("unexpected artist_name %q", got)
		}
		if got := r.URL.Query().Get("track_name"); got != "Amazing Grace" {
			t.Errorf("unexpected track_name %q", got)
		}
		w.Write([]byte(`{"id":1,"name":"Amazing Grace","artistName":"John Newton","plainLyrics":"Amazing grace, how sweet the sound"}`))
	}))
	defer server.Close()

	provider := NewLRCLib(lrclibManager(server.URL))

	text, err := provider.Lookup(context.Background(), "John Newton", "Amazing Grace")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if text != "Amazing grace, how sweet the sound" {
		t.Errorf("unexpected lyrics %q", text)
	}
}

func TestLRCLib_NotFoundIsCleanMiss(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	provider := NewLRCLib(lrclibManager(server.URL))

	text, err := provider.Lookup(context.Background(), "Nobody", "Nothing")
	if err != nil {
		t.Fatalf("expected a clean miss, got error %v", err)
	}
	if text != "" {
		t.Errorf("expected empty lyrics, got %q", text)
	}
}

func TestLRCLib_ServerErrorIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewLRCLib(lrclibManager(server.URL))

	if _, err := provider.Lookup(context.Background(), "a", "b"); err == nil {
		t.Error("expected an error for a 500 response")
	}
}

func TestLRCLib_FreeformSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "amazing grace john newton" {
			t.Errorf("unexpected query %q", got)
		}
		w.Write([]byte(`[{"id":1,"name":"Amazing Grace","artistName":"John Newton","plainLyrics":"Amazing grace"}]`))
	}))
	defer server.Close()

	provider := NewLRCLib(lrclibManager(server.URL))

	// Empty artist selects freeform mode.
	text, err := provider.Lookup(context.Background(), "", "amazing grace john newton")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if text != "Amazing grace" {
		t.Errorf("unexpected lyrics %q", text)
	}
}

func TestLRCLib_SyncedLyricsFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"syncedLyrics":"[00:01.00] Line one\n[00:05.00] Line two"}`))
	}))
	defer server.Close()

	provider := NewLRCLib(lrclibManager(server.URL))

	text, err := provider.Lookup(context.Background(), "a", "b")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if text != "Line one\nLine two" {
		t.Errorf("expected de-timestamped lyrics, got %q", text)
	}
}
