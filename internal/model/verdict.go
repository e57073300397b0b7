package model

// Verdict is the categorical outcome of an analysis.
type Verdict string

const (
	VerdictInsufficient Verdict = "insufficient"  // text too short to score
	VerdictFake         Verdict = "fake"          // flagged as disinformation
	VerdictToVerify     Verdict = "to_verify"     // gray zone, manual check
	VerdictProbablyTrue Verdict = "probably_true" // no strong suspicion
)

// SuspicionScore is the heuristic scorer output: a [0,1] score plus the
// count of high-severity rules that fired. Trust indicators are kept for
// transparency; they have already been folded into the score.
type SuspicionScore struct {
	Score           float64  `json:"score"`
	RedFlags        int      `json:"red_flags"`
	TrustIndicators int      `json:"trust_indicators"`
	Triggered       []string `json:"triggered,omitempty"` // rule names, in evaluation order
}

// EvidenceState is the tri-state outcome of evidence aggregation.
type EvidenceState string

const (
	EvidenceTrue    EvidenceState = "true"
	EvidenceFalse   EvidenceState = "false"
	EvidenceUnknown EvidenceState = "unknown"
)

// SearchResult is one retrieved search hit, as supplied by the evidence
// collaborator. No ordering or count is guaranteed.
type SearchResult struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// EvidenceVerdict reconciles a set of search results into a single
// true/false/unknown signal with a confidence.
type EvidenceVerdict struct {
	State        EvidenceState `json:"state"`
	Confidence   float64       `json:"confidence"`
	TrueSignals  int           `json:"true_signals"`
	FalseSignals int           `json:"false_signals"`
	Results      []SearchResult `json:"results,omitempty"`
}

// FactMatch is the result of a known-fact table lookup.
type FactMatch struct {
	Matches       []string `json:"matches,omitempty"`
	VerifiedTrue  bool     `json:"verified_as_true"`
	VerifiedFalse bool     `json:"verified_as_false"`
}

// FinalVerdict is the externally visible result. Confidence and
// Reliability are complementary: Reliability = (1 - Confidence) * 100,
// recomputed together whenever confidence moves.
type FinalVerdict struct {
	Verdict     Verdict  `json:"verdict"`
	Confidence  float64  `json:"confidence"`
	Reliability float64  `json:"reliability"`
	IsFake      bool     `json:"is_fake"`
	Reasons     []string `json:"reasons"`
}
