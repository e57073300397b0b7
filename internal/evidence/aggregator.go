package evidence

import (
	"strings"

	"github.com/veridique/veridique/internal/model"
)

// Keyword sets classify a result title as corroborating or debunking.
// Titles matching neither are neutral and carry no weight.
var (
	trueKeywords = []string{
		"vrai", "true", "correct", "confirmé", "confirmed", "vérifié", "verified",
		"officiel", "official", "source fiable",
	}

	falseKeywords = []string{
		"faux", "false", "fake", "hoax", "canular", "rumeur", "rumor",
		"démenti", "debunked", "démythifié", "non vérifié",
	}
)

// defaultTrustedSources are fact-checking sites, major outlets and
// encyclopedic references whose hits count double.
var defaultTrustedSources = []string{
	"snopes", "factcheck", "lemonde", "franceinfo", "france 24",
	"bbc", "reuters", "ap news", "the guardian", "wikipedia",
	"wikipédia", "encyclopédie", "biographie", "biography",
}

// Aggregator reconciles search results into a tri-state verdict. Pure
// aggregation: it performs no retrieval and handles an empty input.
type Aggregator struct {
	trusted []string
}

// NewAggregator creates an aggregator with the default trusted-source
// allowlist.
func NewAggregator() *Aggregator {
	return &Aggregator{trusted: defaultTrustedSources}
}

// NewAggregatorWithSources creates an aggregator with a custom allowlist.
func NewAggregatorWithSources(trusted []string) *Aggregator {
	return &Aggregator{trusted: trusted}
}

// Aggregate weighs each result's title against the keyword sets and
// produces a verdict. A category wins when it outnumbers the other by
// more than 1.5x; anything else (including no signals) is unknown.
func (a *Aggregator) Aggregate(results []model.SearchResult) model.EvidenceVerdict {
	trueCount := 0
	falseCount := 0

	for _, r := range results {
		title := strings.ToLower(r.Title)
		url := strings.ToLower(r.URL)

		weight := 1
		if a.isTrusted(title, url) {
			weight = 2
		}

		switch {
		case containsAny(title, falseKeywords):
			falseCount += weight
		case containsAny(title, trueKeywords):
			trueCount += weight
		}
	}

	total := trueCount + falseCount
	verdict := model.EvidenceVerdict{
		TrueSignals:  trueCount,
		FalseSignals: falseCount,
		Results:      results,
	}

	switch {
	case total == 0:
		verdict.State = model.EvidenceUnknown
		verdict.Confidence = 0.3
	case float64(falseCount) > float64(trueCount)*1.5:
		verdict.State = model.EvidenceFalse
		verdict.Confidence = signalConfidence(falseCount, total)
	case float64(trueCount) > float64(falseCount)*1.5:
		verdict.State = model.EvidenceTrue
		verdict.Confidence = signalConfidence(trueCount, total)
	default:
		// Conflicting signals: slightly higher floor than no data at all.
		verdict.State = model.EvidenceUnknown
		verdict.Confidence = 0.4
	}

	return verdict
}

func (a *Aggregator) isTrusted(title, url string) bool {
	for _, src := range a.trusted {
		if strings.Contains(title, src) || strings.Contains(url, src) {
			return true
		}
	}
	return false
}

func signalConfidence(winning, total int) float64 {
	c := 0.5 + float64(winning)/float64(total)*0.4
	if c > 0.9 {
		return 0.9
	}
	return c
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
