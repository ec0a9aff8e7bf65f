package library

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultLibraryAddr {
		t.Fatalf("host = %q, want %q", u.Host, defaultLibraryAddr)
	}

	u, err = parseBaseURL("http://media.lan:9000/some/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchCatalog(t *testing.T) {
	t.Parallel()

	var gotUserAgent string
	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(CatalogResponse{Videos: []Video{
			{Name: "intro.mp4", Size: 1536, URL: "/videos/intro.mp4"},
			{Name: "feature.mkv", Size: 4 << 30, URL: "/videos/feature.mkv"},
		}})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	videos, err := c.FetchCatalog(ctx)
	if err != nil {
		t.Fatalf("FetchCatalog returned error: %v", err)
	}
	if gotPath != "/api/videos" {
		t.Fatalf("request path = %q, want /api/videos", gotPath)
	}
	if len(videos) != 2 || videos[0].Name != "intro.mp4" || videos[1].Size != 4<<30 {
		t.Fatalf("FetchCatalog videos = %#v, want 2 entries in server order", videos)
	}
	if !strings.HasPrefix(gotUserAgent, "marquee/") {
		t.Fatalf("User-Agent = %q, want marquee/*", gotUserAgent)
	}
}

func TestClient_HTTPErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchCatalog(context.Background())
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchCatalog error = %v, want status 500 error", err)
	}
}

func TestClient_MalformedPayloadIsError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchCatalog(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchCatalog error = %v, want decode response error", err)
	}
}

func TestClient_ResolveURL(t *testing.T) {
	c, err := NewClient("media.lan:8000")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	tests := []struct {
		raw  string
		want string
	}{
		{"/videos/clip.mp4", "http://media.lan:8000/videos/clip.mp4"},
		{"/videos/two%20words.mp4", "http://media.lan:8000/videos/two%20words.mp4"},
		{"https://cdn.example/v/clip.mp4", "https://cdn.example/v/clip.mp4"},
	}
	for _, tt := range tests {
		if got := c.ResolveURL(tt.raw); got != tt.want {
			t.Errorf("ResolveURL(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
