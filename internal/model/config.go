package model

import "time"

// Config is the full runtime configuration, loadable from
// ~/.veridique/config.yaml, VERIDIQUE_* environment variables, or flags.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	Search      SearchConfig      `yaml:"search"`
	Classifier  ClassifierConfig  `yaml:"classifier"`
	Engine      EngineConfig      `yaml:"engine"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// HTTPConfig applies to all outbound requests (search, page fetch).
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
}

// CacheConfig controls the in-memory cache for search results and pages.
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled"`
	TTL             time.Duration `yaml:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// SearchConfig controls the evidence-retrieval collaborator.
type SearchConfig struct {
	Enabled           bool    `yaml:"enabled"`
	BaseURL           string  `yaml:"base_url"`
	MaxQueries        int     `yaml:"max_queries"` // query variants per text
	MaxResults        int     `yaml:"max_results"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// ClassifierConfig controls the optional external text classifier.
// An empty Provider disables it entirely; the engine then runs on the
// local pattern fallback.
type ClassifierConfig struct {
	Provider string `yaml:"provider"` // "openai" or "" (disabled)
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key,omitempty"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Timeout  int    `yaml:"timeout"` // seconds
	MaxChars int    `yaml:"max_chars"`
}

// EngineConfig holds the hand-tuned decision thresholds. Defaults match
// the calibrated values; they are configuration, not invariants.
type EngineConfig struct {
	FakeThreshold   float64 `yaml:"fake_threshold"`   // above this: fake
	VerifyThreshold float64 `yaml:"verify_threshold"` // above this: to_verify
	RedFlagLimit    int     `yaml:"red_flag_limit"`   // flags forcing fake
	MinLength       int     `yaml:"min_length"`       // trimmed chars for a scorable text
}

// ConcurrencyConfig controls batch processing.
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Veridique/0.1 (+https://github.com/veridique/veridique)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             15 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
		Search: SearchConfig{
			Enabled:           true,
			BaseURL:           "https://html.duckduckgo.com/html/",
			MaxQueries:        2,
			MaxResults:        15,
			RequestsPerSecond: 1,
			Burst:             2,
		},
		Classifier: ClassifierConfig{
			Provider: "", // disabled until configured
			Timeout:  30,
			MaxChars: 512,
		},
		Engine: EngineConfig{
			FakeThreshold:   0.65,
			VerifyThreshold: 0.40,
			RedFlagLimit:    3,
			MinLength:       10,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
