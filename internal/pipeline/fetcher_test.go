package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/veridique/veridique/internal/cache"
	"github.com/veridique/veridique/internal/model"
)

func testHTTPConfig() model.HTTPConfig {
	return model.HTTPConfig{
		Timeout:      5 * time.Second,
		UserAgent:    "veridique-test",
		MaxBodyBytes: 1 << 20,
	}
}

func TestFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><title>t</title><script>var x=1;</script></head>
<body><p>Selon une étude, les chiffres progressent.</p></body></html>`))
	}))
	defer server.Close()

	fetcher := NewFetcher(testHTTPConfig(), nil)

	page, err := fetcher.Fetch(context.Background(), server.URL+"/article")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(page.Text, "les chiffres progressent") {
		t.Errorf("page text missing body content: %q", page.Text)
	}
	if strings.Contains(page.Text, "var x=1") {
		t.Errorf("script content leaked into page text: %q", page.Text)
	}
	if page.Meta.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", page.Meta.StatusCode)
	}
	if page.Meta.ContentType != "text/html" {
		t.Errorf("content type = %q", page.Meta.ContentType)
	}
}

func TestFetcher_RobotsDisallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
			return
		}
		w.Write([]byte("<html><body>private content</body></html>"))
	}))
	defer server.Close()

	fetcher := NewFetcher(testHTTPConfig(), nil)

	if _, err := fetcher.Fetch(context.Background(), server.URL+"/private/page"); err == nil {
		t.Error("expected fetch to be blocked by robots.txt")
	}

	if _, err := fetcher.Fetch(context.Background(), server.URL+"/public/page"); err != nil {
		t.Errorf("allowed path blocked: %v", err)
	}
}

func TestFetcher_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	fetcher := NewFetcher(testHTTPConfig(), nil)

	if _, err := fetcher.Fetch(context.Background(), server.URL+"/missing"); err == nil {
		t.Error("expected an error on 4xx status")
	}
}

func TestFetcher_BodySizeCap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(strings.Repeat("a", 4096)))
	}))
	defer server.Close()

	cfg := testHTTPConfig()
	cfg.MaxBodyBytes = 100
	fetcher := NewFetcher(cfg, nil)

	page, err := fetcher.Fetch(context.Background(), server.URL+"/big")
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Text) > 100 {
		t.Errorf("body cap not applied, got %d bytes", len(page.Text))
	}
}

func TestFetcher_CachedPageSkipsNetwork(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		requests++
		w.Write([]byte("<html><body>cached body text</body></html>"))
	}))
	defer server.Close()

	fetcher := NewFetcher(testHTTPConfig(), cache.NewMemory(time.Minute, time.Minute))

	url := server.URL + "/article"
	if _, err := fetcher.Fetch(context.Background(), url); err != nil {
		t.Fatal(err)
	}
	page, err := fetcher.Fetch(context.Background(), url)
	if err != nil {
		t.Fatal(err)
	}

	if requests != 1 {
		t.Errorf("expected 1 page request, got %d", requests)
	}
	if page.Text != "cached body text" {
		t.Errorf("cached text = %q", page.Text)
	}
}

func TestExtractText(t *testing.T) {
	html := `<html><head><style>p{color:red}</style></head>
<body><h1>Title</h1><p>First part.</p><noscript>ignored</noscript><p>Second part.</p></body></html>`

	text := ExtractText(html)

	if text != "Title First part. Second part." {
		t.Errorf("ExtractText = %q", text)
	}
}

func TestExtractText_PlainInputPassesThrough(t *testing.T) {
	if got := ExtractText("just a plain sentence"); got != "just a plain sentence" {
		t.Errorf("ExtractText = %q", got)
	}
}
