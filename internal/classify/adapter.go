package classify

import (
	"context"
	"unicode/utf8"
)

// Adapter wraps an optional Provider and remaps its sentiment output onto
// the disinformation scale. Absent or failing providers degrade to the
// local pattern fallback; the adapter never returns an error.
type Adapter struct {
	provider Provider
	maxChars int
}

// NewAdapter creates an adapter around the given provider. A nil provider
// means classification is disabled and only the fallback runs.
func NewAdapter(provider Provider, maxChars int) *Adapter {
	if maxChars <= 0 {
		maxChars = 512
	}
	return &Adapter{provider: provider, maxChars: maxChars}
}

// ProviderName reports which signal produced the last possible score
// source: the provider's name, or "fallback" when none is configured.
func (a *Adapter) ProviderName() string {
	if a.provider == nil {
		return "fallback"
	}
	return a.provider.Name()
}

// Score returns the probability of disinformation in [0,1] together with
// the name of the signal that produced it.
//
// A NEGATIVE label maps directly to its confidence; a POSITIVE label maps
// to its complement. Classifier input is capped at maxChars.
func (a *Adapter) Score(ctx context.Context, text string) (float64, string) {
	if a.provider == nil {
		return FallbackScore(text), "fallback"
	}

	truncated := text
	if len(truncated) > a.maxChars {
		cut := a.maxChars
		for cut > 0 && !utf8.RuneStart(truncated[cut]) {
			cut--
		}
		truncated = truncated[:cut]
	}

	c, err := a.provider.Classify(ctx, truncated)
	if err != nil {
		return FallbackScore(text), "fallback"
	}

	if c.Label == "NEGATIVE" {
		return c.Score, a.provider.Name()
	}
	return 1.0 - c.Score, a.provider.Name()
}
