package model

// FeatureSet is the fixed set of signals derived once from an AnalyzedText.
// All fields are countable or boolean; extraction is pure and never fails.
type FeatureSet struct {
	CharCount     int `json:"char_count"`
	WordCount     int `json:"word_count"`
	SentenceCount int `json:"sentence_count"`

	AlarmistCount  int `json:"alarmist_count"`  // alarmist/clickbait vocabulary hits
	EmotionalCount int `json:"emotional_count"` // emotional vocabulary hits

	DeathClaim     bool `json:"death_claim"`     // death/assassination announcement
	PoliticalClaim bool `json:"political_claim"` // office-holding assertion
	HasSource      bool `json:"has_source"`      // citation keyword present
	Misspelling    bool `json:"misspelling"`     // known misspelling pattern
	HasNumbers     bool `json:"has_numbers"`     // any digit sequence

	CapsRatio          float64 `json:"caps_ratio"`          // uppercase chars / char count
	ExclamationDensity float64 `json:"exclamation_density"` // '!' count / char count

	// SimpleFactualClaim exempts terse verifiable statements ("X is
	// Argentine") from the short-text penalty.
	SimpleFactualClaim bool `json:"simple_factual_claim"`
}

// Sentiment is a lightweight keyword-based bias probe. It is reported
// alongside the verdict and never feeds the scoring arithmetic.
type Sentiment struct {
	Label        string  `json:"label"` // positive, negative, neutral
	Score        float64 `json:"score"` // 0.5 is neutral
	BiasDetected bool    `json:"bias_detected"`
}

// Metrics carries basic readability numbers for the report envelope.
type Metrics struct {
	WordCount       int     `json:"word_count"`
	SentenceCount   int     `json:"sentence_count"`
	AvgWordsPerSent float64 `json:"avg_words_per_sentence"`
	CharCount       int     `json:"char_count"`
	Readability     string  `json:"readability"` // easy, medium, complex
}
