package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/veridique/veridique/internal/cache"
	"github.com/veridique/veridique/internal/classify"
	"github.com/veridique/veridique/internal/evidence"
	"github.com/veridique/veridique/internal/facts"
	"github.com/veridique/veridique/internal/feature"
	"github.com/veridique/veridique/internal/model"
	"github.com/veridique/veridique/internal/score"
	"github.com/veridique/veridique/internal/search"
	"github.com/veridique/veridique/internal/verdict"
)

// Analyzer wires the scoring engine to its optional collaborators: the
// external classifier, the evidence searcher and the known-fact table.
// Each collaborator may be absent or failing; analysis always produces a
// report for well-formed text.
type Analyzer struct {
	config     *model.Config
	scorer     *score.Scorer
	adapter    *classify.Adapter
	searcher   search.Searcher
	aggregator *evidence.Aggregator
	facts      *facts.Table
	decider    *verdict.Decider
	fetcher    *Fetcher
}

// NewAnalyzer builds an analyzer from configuration.
func NewAnalyzer(cfg *model.Config) (*Analyzer, error) {
	provider, err := classify.NewProvider(classify.Config{
		Provider: cfg.Classifier.Provider,
		Model:    cfg.Classifier.Model,
		APIKey:   cfg.Classifier.APIKey,
		BaseURL:  cfg.Classifier.BaseURL,
		Timeout:  cfg.Classifier.Timeout,
		MaxChars: cfg.Classifier.MaxChars,
	})
	if err != nil {
		// A misconfigured classifier is not fatal: warn and run on the
		// local fallback.
		fmt.Fprintf(os.Stderr, "Warning: classifier disabled: %v\n", err)
		provider = nil
	}

	var store cache.Cache
	if cfg.Cache.Enabled {
		store = cache.NewMemory(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	var searcher search.Searcher
	if cfg.Search.Enabled {
		searcher = search.NewClient(cfg.Search, cfg.HTTP, store)
	}

	return &Analyzer{
		config:     cfg,
		scorer:     score.NewScorer(),
		adapter:    classify.NewAdapter(provider, cfg.Classifier.MaxChars),
		searcher:   searcher,
		aggregator: evidence.NewAggregator(),
		facts:      facts.NewTable(),
		decider: verdict.NewDecider(verdict.Thresholds{
			Fake:      cfg.Engine.FakeThreshold,
			VerifyLow: cfg.Engine.VerifyThreshold,
			RedFlags:  cfg.Engine.RedFlagLimit,
			MinLength: cfg.Engine.MinLength,
		}),
		fetcher: NewFetcher(cfg.HTTP, store),
	}, nil
}

// AnalyzeText scores a raw text and assembles the full report.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) (*model.Report, error) {
	features := feature.Extract(text)
	suspicion := a.scorer.Score(features)
	aiScore, aiProvider := a.adapter.Score(ctx, text)

	factMatch := a.facts.Lookup(text)
	ev := a.gatherEvidence(ctx, text)

	detection, err := a.decider.Decide(text, aiScore, suspicion, features, ev, &factMatch)
	if err != nil {
		return nil, fmt.Errorf("decide: %w", err)
	}

	report := &model.Report{
		Input:      model.Excerpt(text),
		InputKind:  "text",
		AnalyzedAt: time.Now().UTC(),
		Detection:  detection,
		Features:   features,
		Suspicion:  suspicion,
		AIScore:    aiScore,
		AIProvider: aiProvider,
		Evidence:   ev,
		KnownFacts: &factMatch,
		Sentiment:  feature.AnalyzeSentiment(text),
		Metrics:    feature.ComputeMetrics(text),
	}
	report.Recommendation = recommendation(report)

	return report, nil
}

// AnalyzeURL fetches a page, extracts its visible text and scores it.
func (a *Analyzer) AnalyzeURL(ctx context.Context, rawURL string) (*model.Report, error) {
	page, err := a.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	report, err := a.AnalyzeText(ctx, page.Text)
	if err != nil {
		return nil, err
	}

	report.InputKind = "url"
	report.SourceURL = rawURL
	report.FetchMeta = &page.Meta
	return report, nil
}

// gatherEvidence runs the configured query variants and aggregates the
// merged results. Retrieval failures degrade to a nil verdict; they are
// never surfaced as analysis errors.
func (a *Analyzer) gatherEvidence(ctx context.Context, text string) *model.EvidenceVerdict {
	if a.searcher == nil {
		return nil
	}
	if utf8.RuneCountInString(strings.TrimSpace(text)) < a.config.Engine.MinLength {
		return nil
	}

	seen := make(map[string]bool)
	var merged []model.SearchResult

	for _, query := range search.Queries(text, a.config.Search.MaxQueries) {
		results, err := a.searcher.Search(ctx, query)
		if err != nil {
			if a.config.Output.Verbose {
				fmt.Fprintf(os.Stderr, "Warning: search %q failed: %v\n", query, err)
			}
			continue
		}
		for _, r := range results {
			if seen[r.Title] {
				continue
			}
			seen[r.Title] = true
			merged = append(merged, r)
		}
	}

	if len(merged) == 0 {
		return nil
	}

	ev := a.aggregator.Aggregate(merged)
	return &ev
}

// recommendation distills the report into one advisory line: evidence
// results first, then the detection outcome, then sentiment bias.
func recommendation(r *model.Report) string {
	var parts []string

	switch {
	case r.Evidence != nil && r.Evidence.State == model.EvidenceFalse:
		parts = append(parts, fmt.Sprintf("Information verified as FALSE by web search (confidence %.0f%%).", r.Evidence.Confidence*100))
	case r.Evidence != nil && r.Evidence.State == model.EvidenceTrue:
		parts = append(parts, fmt.Sprintf("Information verified as TRUE by web search (confidence %.0f%%).", r.Evidence.Confidence*100))
	case r.Evidence != nil && len(r.Evidence.Results) > 0:
		parts = append(parts, fmt.Sprintf("%d search result(s) found but verdict inconclusive.", len(r.Evidence.Results)))
	case r.KnownFacts != nil && r.KnownFacts.VerifiedTrue:
		parts = append(parts, "Information verified as TRUE against the known-fact table (web search unavailable).")
	case r.KnownFacts != nil && r.KnownFacts.VerifiedFalse:
		parts = append(parts, "Information verified as FALSE against the known-fact table (web search unavailable).")
	}

	switch {
	case r.Detection.IsFake:
		parts = append(parts, "This content shows signs of disinformation. Check the sources.")
	case r.Detection.Confidence > 0.5:
		parts = append(parts, "This content needs deeper verification.")
	case r.Sentiment.BiasDetected:
		parts = append(parts, "This content carries an emotional bias.")
	default:
		parts = append(parts, "This content looks reliable, but stay critical.")
	}

	return strings.Join(parts, " ")
}
