package classify

import (
	"context"
)

// Classification is a raw label/score pair from an external classifier.
// The label denotes sentiment polarity; the adapter remaps it onto the
// disinformation scale.
type Classification struct {
	Label string  `json:"label"` // "POSITIVE" or "NEGATIVE"
	Score float64 `json:"score"` // [0,1]
}

// Provider is the external text-classifier boundary. Implementations may
// fail at any time; the adapter owns the fallback.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Classify labels the given text. The adapter truncates input before
	// calling; implementations may assume it fits one request.
	Classify(ctx context.Context, text string) (Classification, error)

	// IsAvailable checks if the provider is configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// Config holds classifier provider configuration.
type Config struct {
	Provider string // "openai" or "" (disabled)
	Model    string
	APIKey   string
	BaseURL  string
	Timeout  int // seconds
	MaxChars int // input truncation, default 512
}

// DefaultConfig returns sensible defaults with the provider disabled.
func DefaultConfig() Config {
	return Config{
		Timeout:  30,
		MaxChars: 512,
	}
}
