package score

import (
	"math"
	"testing"

	"github.com/veridique/veridique/internal/model"
)

func TestScorer_WellSourcedLongText(t *testing.T) {
	scorer := NewScorer()

	f := model.FeatureSet{
		CharCount:     250,
		WordCount:     45,
		SentenceCount: 3,
		HasSource:     true,
		HasNumbers:    true,
	}

	result := scorer.Score(f)

	if result.Score != 0 {
		t.Errorf("expected score clamped to 0, got %v", result.Score)
	}
	if result.RedFlags != 0 {
		t.Errorf("expected no red flags, got %d", result.RedFlags)
	}
	// length, source (x2), structure, numeric data
	if result.TrustIndicators != 5 {
		t.Errorf("expected 5 trust indicators, got %d", result.TrustIndicators)
	}
}

func TestScorer_UnsourcedPoliticalClaimWithTypo(t *testing.T) {
	scorer := NewScorer()

	f := model.FeatureSet{
		CharCount:      34,
		WordCount:      6,
		PoliticalClaim: true,
		Misspelling:    true,
	}

	result := scorer.Score(f)

	// 0.10 length + 0.85 political + 0.45 misspelling, clamped
	if result.Score != 1.0 {
		t.Errorf("expected score clamped to 1.0, got %v", result.Score)
	}
	if result.RedFlags != 4 {
		t.Errorf("expected 4 red flags, got %d", result.RedFlags)
	}

	want := map[string]bool{"political_claim": true, "misspelling": true}
	for _, name := range result.Triggered {
		delete(want, name)
	}
	if len(want) != 0 {
		t.Errorf("missing triggered rules: %v (got %v)", want, result.Triggered)
	}
}

func TestScorer_ShortDeathClaim(t *testing.T) {
	scorer := NewScorer()

	f := model.FeatureSet{
		CharCount:  14,
		WordCount:  3,
		DeathClaim: true,
	}

	result := scorer.Score(f)

	// 0.30 death + 0.20 length + 0.20 unsourced short death text
	if math.Abs(result.Score-0.70) > 1e-9 {
		t.Errorf("expected score 0.70, got %v", result.Score)
	}
	if result.RedFlags != 3 {
		t.Errorf("expected 3 red flags, got %d", result.RedFlags)
	}
}

func TestScorer_SimpleFactualClaimExemption(t *testing.T) {
	scorer := NewScorer()

	short := model.FeatureSet{CharCount: 18, WordCount: 3}
	exempt := short
	exempt.SimpleFactualClaim = true

	penalized := scorer.Score(short)
	exempted := scorer.Score(exempt)

	if penalized.Score <= exempted.Score {
		t.Errorf("short-text penalty should not apply to simple claims: %v vs %v",
			penalized.Score, exempted.Score)
	}
	if exempted.RedFlags != 0 {
		t.Errorf("expected no red flags for exempt claim, got %d", exempted.RedFlags)
	}
}

// Adding a source citation must never raise suspicion, whatever else the
// text contains.
func TestScorer_SourceNeverIncreasesScore(t *testing.T) {
	scorer := NewScorer()

	shapes := []model.FeatureSet{
		{CharCount: 34, WordCount: 6, PoliticalClaim: true, Misspelling: true},
		{CharCount: 80, WordCount: 12, DeathClaim: true},
		{CharCount: 250, WordCount: 45, SentenceCount: 3},
		{CharCount: 120, WordCount: 20, AlarmistCount: 3, EmotionalCount: 2},
		{CharCount: 14, WordCount: 3},
	}

	for i, f := range shapes {
		without := scorer.Score(f)

		f.HasSource = true
		with := scorer.Score(f)

		if with.Score > without.Score {
			t.Errorf("shape %d: score rose from %v to %v after adding a source",
				i, without.Score, with.Score)
		}
	}
}

func TestScorer_ScoreStaysInRange(t *testing.T) {
	scorer := NewScorer()

	everything := model.FeatureSet{
		CharCount:          40,
		WordCount:          8,
		AlarmistCount:      5,
		EmotionalCount:     5,
		DeathClaim:         true,
		PoliticalClaim:     true,
		Misspelling:        true,
		CapsRatio:          0.6,
		ExclamationDensity: 0.2,
	}

	result := scorer.Score(everything)
	if result.Score < 0 || result.Score > 1 {
		t.Errorf("score out of range: %v", result.Score)
	}
	if result.Score != 1.0 {
		t.Errorf("expected saturated score, got %v", result.Score)
	}
}

func TestScorer_Deterministic(t *testing.T) {
	scorer := NewScorer()
	f := model.FeatureSet{CharCount: 120, WordCount: 20, AlarmistCount: 2, HasNumbers: true}

	a := scorer.Score(f)
	b := scorer.Score(f)

	if a.Score != b.Score || a.RedFlags != b.RedFlags || a.TrustIndicators != b.TrustIndicators {
		t.Errorf("identical input produced different output: %+v vs %+v", a, b)
	}
}
