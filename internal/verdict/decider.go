package verdict

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/veridique/veridique/internal/model"
)

// Thresholds are the hand-tuned decision boundaries. They are tunable
// configuration, not invariants; the defaults are the calibrated values.
type Thresholds struct {
	Fake      float64 // final score above this is fake
	VerifyLow float64 // scores in [VerifyLow, Fake] are to_verify
	RedFlags  int     // this many flags force fake regardless of score
	MinLength int     // trimmed chars below this are insufficient
}

// DefaultThresholds returns the calibrated decision boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Fake:      0.65,
		VerifyLow: 0.40,
		RedFlags:  3,
		MinLength: 10,
	}
}

// Decider fuses the classifier score, the heuristic suspicion score and
// optional external evidence into a FinalVerdict. Pure and deterministic:
// identical inputs always yield identical output.
type Decider struct {
	thresholds Thresholds
}

// NewDecider creates a decider with the given thresholds.
func NewDecider(t Thresholds) *Decider {
	if t.MinLength <= 0 {
		t.MinLength = 10
	}
	return &Decider{thresholds: t}
}

// Decide produces the final verdict. Evidence and facts are optional and
// independently nil; evidence always wins over the base ladder, facts
// apply only when the evidence verdict did not settle the question.
//
// aiScore and suspicion.Score outside [0,1] are programmer errors and
// fail fast rather than clamping.
func (d *Decider) Decide(text string, aiScore float64, suspicion model.SuspicionScore, features model.FeatureSet, ev *model.EvidenceVerdict, facts *model.FactMatch) (model.FinalVerdict, error) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < d.thresholds.MinLength {
		return model.FinalVerdict{
			Verdict:     model.VerdictInsufficient,
			Confidence:  0,
			Reliability: 100,
			Reasons:     []string{"text too short for reliable analysis"},
		}, nil
	}

	if aiScore < 0 || aiScore > 1 {
		return model.FinalVerdict{}, fmt.Errorf("ai score out of range: %v", aiScore)
	}
	if suspicion.Score < 0 || suspicion.Score > 1 {
		return model.FinalVerdict{}, fmt.Errorf("suspicion score out of range: %v", suspicion.Score)
	}

	final := 0.5*aiScore + 0.5*suspicion.Score

	var verdict model.Verdict
	var isFake bool

	// Override ladder, first match wins. Unsourced political claims force
	// the score to the near-zero reliability band; a known misspelling on
	// top of the claim compounds to the highest forced score.
	switch {
	case features.PoliticalClaim && features.Misspelling && !features.HasSource:
		final = 0.99
		verdict, isFake = model.VerdictFake, true
	case features.PoliticalClaim && !features.HasSource && features.CharCount < 150:
		final = 0.98
		verdict, isFake = model.VerdictFake, true
	case final > d.thresholds.Fake || suspicion.RedFlags >= d.thresholds.RedFlags:
		verdict, isFake = model.VerdictFake, true
	case final >= d.thresholds.VerifyLow && final <= d.thresholds.Fake:
		verdict, isFake = model.VerdictToVerify, false
	default:
		verdict, isFake = model.VerdictProbablyTrue, false
	}

	// External evidence wins over the ladder. The known-fact table is a
	// fallback with smaller adjustments.
	switch {
	case ev != nil && ev.State == model.EvidenceFalse && ev.Confidence > 0.5:
		final = capAt(final+0.30, 1.0)
		verdict, isFake = model.VerdictFake, true
	case ev != nil && ev.State == model.EvidenceTrue && ev.Confidence > 0.5:
		final = floorAt(final-0.35, 0.0)
		verdict, isFake = model.VerdictProbablyTrue, false
	case facts != nil && facts.VerifiedTrue:
		final = floorAt(final-0.30, 0.0)
		verdict, isFake = model.VerdictProbablyTrue, false
	case facts != nil && facts.VerifiedFalse:
		final = capAt(final+0.25, 1.0)
		verdict, isFake = model.VerdictFake, true
	}

	return model.FinalVerdict{
		Verdict:     verdict,
		Confidence:  final,
		Reliability: (1.0 - final) * 100,
		IsFake:      isFake,
		Reasons:     buildReasons(final, suspicion, features),
	}, nil
}

func capAt(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}

func floorAt(v, min float64) float64 {
	if v < min {
		return min
	}
	return v
}
