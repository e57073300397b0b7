package model

import "time"

// Report is the complete analysis envelope rendered to JSON/Markdown.
type Report struct {
	Input      string    `json:"input"`             // excerpt, capped at 200 chars
	InputKind  string    `json:"input_kind"`        // "text" or "url"
	SourceURL  string    `json:"source_url,omitempty"`
	AnalyzedAt time.Time `json:"analyzed_at"`
	FetchMeta  *FetchMeta `json:"fetch_meta,omitempty"`

	Detection FinalVerdict   `json:"detection"`
	Features  FeatureSet     `json:"features"`
	Suspicion SuspicionScore `json:"suspicion"`

	AIScore    float64 `json:"ai_score"`
	AIProvider string  `json:"ai_provider"` // provider name, "fallback" when degraded

	Evidence   *EvidenceVerdict `json:"evidence,omitempty"`
	KnownFacts *FactMatch       `json:"known_facts,omitempty"`

	Sentiment      Sentiment `json:"sentiment"`
	Metrics        Metrics   `json:"metrics"`
	Recommendation string    `json:"recommendation"`
}

// FetchMeta contains HTTP metadata when the input came from a URL scan.
type FetchMeta struct {
	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type,omitempty"`
	FinalURL    string `json:"final_url,omitempty"`
}

// Excerpt truncates an input string for the report envelope.
func Excerpt(text string) string {
	if len(text) > 200 {
		return text[:200] + "..."
	}
	return text
}
