package score

import (
	"github.com/veridique/veridique/internal/model"
)

// effect is what a single rule contributes to the accumulator.
type effect struct {
	flags int
	trust int
	delta float64
}

// rule is one step of the additive point system. Rules run in a fixed
// order; each evaluates at most one of its branches.
type rule struct {
	name string
	eval func(f model.FeatureSet) (effect, bool)
}

// Scorer maps a FeatureSet to a SuspicionScore using the calibrated
// rule set. Stateless and safe for concurrent use.
type Scorer struct {
	rules []rule
}

// NewScorer creates a scorer with the standard rule set.
func NewScorer() *Scorer {
	return &Scorer{rules: standardRules()}
}

// Score applies every rule in order, folds trust indicators into the
// score (0.10 each) and clamps to [0,1].
func (s *Scorer) Score(f model.FeatureSet) model.SuspicionScore {
	var out model.SuspicionScore
	total := 0.0

	for _, r := range s.rules {
		eff, fired := r.eval(f)
		if !fired {
			continue
		}
		out.RedFlags += eff.flags
		out.TrustIndicators += eff.trust
		total += eff.delta
		out.Triggered = append(out.Triggered, r.name)
	}

	total -= float64(out.TrustIndicators) * 0.10
	out.Score = clamp01(total)
	return out
}

func standardRules() []rule {
	return []rule{
		{name: "alarmist_keywords", eval: func(f model.FeatureSet) (effect, bool) {
			switch {
			case f.AlarmistCount >= 3:
				return effect{flags: 1, delta: 0.20}, true
			case f.AlarmistCount == 2:
				return effect{delta: 0.10}, true
			}
			return effect{}, false
		}},
		{name: "death_claim", eval: func(f model.FeatureSet) (effect, bool) {
			if !f.DeathClaim {
				return effect{}, false
			}
			switch {
			case f.WordCount <= 10 && f.CharCount < 100:
				return effect{flags: 1, delta: 0.30}, true
			case f.WordCount <= 20:
				return effect{delta: 0.15}, true
			}
			return effect{}, false
		}},
		{name: "capitalization", eval: func(f model.FeatureSet) (effect, bool) {
			switch {
			case f.CapsRatio > 0.40:
				return effect{flags: 1, delta: 0.15}, true
			case f.CapsRatio > 0.25:
				return effect{delta: 0.08}, true
			}
			return effect{}, false
		}},
		{name: "exclamations", eval: func(f model.FeatureSet) (effect, bool) {
			switch {
			case f.ExclamationDensity > 0.08:
				return effect{flags: 1, delta: 0.12}, true
			case f.ExclamationDensity > 0.05:
				return effect{delta: 0.06}, true
			}
			return effect{}, false
		}},
		{name: "text_length", eval: func(f model.FeatureSet) (effect, bool) {
			switch {
			case f.CharCount < 30 && !f.SimpleFactualClaim:
				return effect{flags: 1, delta: 0.20}, true
			case f.CharCount < 50 && !f.SimpleFactualClaim:
				return effect{delta: 0.10}, true
			case f.CharCount > 200:
				return effect{trust: 1}, true
			}
			return effect{}, false
		}},
		{name: "source_citation", eval: func(f model.FeatureSet) (effect, bool) {
			switch {
			case f.HasSource:
				return effect{trust: 2, delta: -0.15}, true
			case f.CharCount > 200:
				return effect{flags: 1, delta: 0.15}, true
			case f.CharCount < 100 && f.DeathClaim:
				return effect{flags: 1, delta: 0.20}, true
			}
			return effect{}, false
		}},
		{name: "emotional_language", eval: func(f model.FeatureSet) (effect, bool) {
			switch {
			case f.EmotionalCount >= 4:
				return effect{flags: 1, delta: 0.12}, true
			case f.EmotionalCount >= 2:
				return effect{delta: 0.06}, true
			}
			return effect{}, false
		}},
		{name: "structure", eval: func(f model.FeatureSet) (effect, bool) {
			if f.SentenceCount >= 2 && f.CharCount > 100 {
				return effect{trust: 1}, true
			}
			return effect{}, false
		}},
		{name: "numeric_data", eval: func(f model.FeatureSet) (effect, bool) {
			if f.HasNumbers && f.CharCount > 100 {
				return effect{trust: 1, delta: -0.05}, true
			}
			return effect{}, false
		}},
		// Unsourced office-holding assertions are the dominant signal:
		// short checkable political claims with no attribution push the
		// score near the fake ceiling on purpose.
		{name: "political_claim", eval: func(f model.FeatureSet) (effect, bool) {
			if !f.PoliticalClaim {
				return effect{}, false
			}
			switch {
			case !f.HasSource && f.CharCount < 150:
				return effect{flags: 3, delta: 0.85}, true
			case !f.HasSource:
				return effect{flags: 2, delta: 0.70}, true
			case f.CharCount < 100:
				return effect{delta: 0.40}, true
			}
			return effect{}, false
		}},
		{name: "misspelling", eval: func(f model.FeatureSet) (effect, bool) {
			if !f.Misspelling {
				return effect{}, false
			}
			eff := effect{flags: 1, delta: 0.30}
			if f.PoliticalClaim {
				eff.delta += 0.15
			}
			return eff, true
		}},
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
