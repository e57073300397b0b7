package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/veridique/veridique/internal/cache"
	"github.com/veridique/veridique/internal/model"
	"github.com/veridique/veridique/internal/util"
	"golang.org/x/net/html"
)

// Fetcher retrieves a page and reduces it to visible text for scoring.
// Fetches honor robots.txt and are size-capped.
type Fetcher struct {
	httpClient *http.Client
	robots     *util.RobotsChecker
	cache      cache.Cache
	userAgent  string
	maxBytes   int64
}

// Page is the fetch output handed to the analyzer.
type Page struct {
	Text string
	Meta model.FetchMeta
}

// NewFetcher creates a fetcher. The cache may be nil.
func NewFetcher(cfg model.HTTPConfig, store cache.Cache) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, ""),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:    util.NewRobotsChecker(cfg.UserAgent, cfg.Timeout),
		cache:     store,
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
	}
}

// Fetch retrieves the page text at rawURL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	cacheKey := cache.Key("page:" + rawURL)
	if f.cache != nil {
		if raw, ok := f.cache.Get(cacheKey); ok {
			return &Page{Text: string(raw), Meta: model.FetchMeta{FinalURL: rawURL}}, nil
		}
	}

	if !f.robots.Allowed(ctx, rawURL) {
		return nil, fmt.Errorf("fetch disallowed by robots.txt: %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	meta := model.FetchMeta{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		FinalURL:    resp.Request.URL.String(),
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	text := ExtractText(string(body))
	if f.cache != nil {
		_ = f.cache.Set(cacheKey, []byte(text), 15*time.Minute)
	}

	return &Page{Text: text, Meta: meta}, nil
}

// ExtractText reduces an HTML document to its visible text, skipping
// script, style and similar containers. Parse failures fall back to the
// raw input so the engine can still score something.
func ExtractText(page string) string {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return page
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				b.WriteString(text)
				b.WriteString(" ")
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return strings.TrimSpace(b.String())
}
