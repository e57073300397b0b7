package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/veridique/veridique/internal/cache"
	"github.com/veridique/veridique/internal/model"
	"github.com/veridique/veridique/internal/util"
	"github.com/veridique/veridique/internal/worker"
	"golang.org/x/net/html"
)

// Searcher is the evidence-retrieval boundary: pure retrieval with no
// guarantee on count or ordering. Callers treat failures as "no
// evidence" and degrade.
type Searcher interface {
	Search(ctx context.Context, query string) ([]model.SearchResult, error)
}

// Client queries the DuckDuckGo HTML endpoint and scrapes result titles
// and URLs. Responses are cached and requests rate-limited per domain.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxBytes   int64
	maxResults int
	limiter    *worker.Limiter
	cache      cache.Cache
}

// NewClient creates a search client. The cache may be nil to disable
// caching.
func NewClient(cfg model.SearchConfig, httpCfg model.HTTPConfig, c cache.Cache) *Client {
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 15
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: httpCfg.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(httpCfg.HTTPProxy, httpCfg.HTTPSProxy, ""),
			},
		},
		baseURL:    cfg.BaseURL,
		userAgent:  httpCfg.UserAgent,
		maxBytes:   httpCfg.MaxBodyBytes,
		maxResults: maxResults,
		limiter:    worker.NewLimiter(rps, cfg.Burst),
		cache:      c,
	}
}

// Search runs one query and returns deduplicated results, capped at the
// configured maximum.
func (c *Client) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	cacheKey := cache.Key("search:" + query)
	if c.cache != nil {
		if raw, ok := c.cache.Get(cacheKey); ok {
			var cached []model.SearchResult
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	searchURL := c.baseURL + "?q=" + url.QueryEscape(query)

	if err := c.limiter.Wait(ctx, searchURL); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	results, err := ParseResults(string(body), c.maxResults)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if raw, err := json.Marshal(results); err == nil {
			_ = c.cache.Set(cacheKey, raw, 15*time.Minute)
		}
	}

	return results, nil
}

// ParseResults extracts (title, url) pairs from a DuckDuckGo HTML result
// page. Anchors carrying the result class are preferred; any other
// outbound anchor with a meaningful title is taken as a secondary
// source. Duplicated titles are dropped.
func ParseResults(page string, max int) ([]model.SearchResult, error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}

	var primary, secondary []model.SearchResult

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			href := attr(n, "href")
			title := strings.TrimSpace(anchorText(n))

			if href != "" && title != "" {
				if strings.Contains(attr(n, "class"), "result__a") {
					primary = append(primary, model.SearchResult{Title: title, URL: href})
				} else if len(title) > 10 && !strings.Contains(href, "duckduckgo.com") {
					secondary = append(secondary, model.SearchResult{Title: title, URL: href})
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	seen := make(map[string]bool)
	var results []model.SearchResult
	for _, r := range append(primary, secondary...) {
		if seen[r.Title] {
			continue
		}
		seen[r.Title] = true
		results = append(results, r)
		if len(results) >= max {
			break
		}
	}

	return results, nil
}

// Queries builds the query variants used for one text: the exact phrase,
// then a fact-check phrasing. Capped at max variants.
func Queries(text string, max int) []string {
	queries := []string{
		fmt.Sprintf("%q", text),
		text + " fact check",
	}
	if max > 0 && len(queries) > max {
		queries = queries[:max]
	}
	return queries
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

func anchorText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}
