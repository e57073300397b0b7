package verdict

import (
	"fmt"

	"github.com/veridique/veridique/internal/model"
)

// buildReasons walks a fixed checklist over the computed signals. Each
// check appends at most one string; the order never changes so output
// stays deterministic. If nothing fires, a single neutral line is
// emitted.
func buildReasons(score float64, suspicion model.SuspicionScore, f model.FeatureSet) []string {
	var reasons []string

	switch {
	case score > 0.7:
		reasons = append(reasons, "very high suspicion score detected")
	case score > 0.5:
		reasons = append(reasons, "moderate suspicion score detected")
	}

	switch {
	case suspicion.RedFlags >= 3:
		reasons = append(reasons, fmt.Sprintf("%d major suspicion indicators detected", suspicion.RedFlags))
	case suspicion.RedFlags >= 2:
		reasons = append(reasons, fmt.Sprintf("%d suspicion indicators detected", suspicion.RedFlags))
	}

	switch {
	case f.DeathClaim && f.WordCount <= 10:
		reasons = append(reasons, "death announcement pattern in a very short unsourced text")
	case f.DeathClaim:
		reasons = append(reasons, "death announcement detected, verify with official sources")
	}

	if f.PoliticalClaim {
		switch {
		case !f.HasSource && f.CharCount < 150:
			reasons = append(reasons, "unsourced factual political claim, a strong disinformation marker")
		case !f.HasSource:
			reasons = append(reasons, "political claim without a source, verify with official sources")
		case f.CharCount < 100:
			reasons = append(reasons, "very short political claim, check the source")
		}
	}

	if f.Misspelling {
		reasons = append(reasons, "known misspelling detected (presidante), a frequent fabrication marker")
	}

	switch {
	case f.AlarmistCount >= 3:
		reasons = append(reasons, "heavy use of alarmist keywords")
	case f.AlarmistCount >= 2:
		reasons = append(reasons, "alarmist keywords present")
	}

	if !f.HasSource {
		switch {
		case f.CharCount > 200:
			reasons = append(reasons, "no sources or references cited")
		case f.CharCount < 100 && f.DeathClaim:
			reasons = append(reasons, "very short text with no source, verify with reliable outlets")
		case f.CharCount < 100:
			reasons = append(reasons, "short text with no source, double-check important claims")
		}
	}

	if f.EmotionalCount >= 4 {
		reasons = append(reasons, "excessive emotional language detected")
	}

	if f.WordCount < 5 {
		reasons = append(reasons, "extremely short text, genuine reporting usually carries more detail")
	}

	switch {
	case suspicion.TrustIndicators >= 2:
		reasons = append(reasons, "several trust indicators present (sources, structure, data)")
	case suspicion.TrustIndicators >= 1:
		reasons = append(reasons, "trust indicator present")
	}

	if f.HasSource {
		reasons = append(reasons, "sources or references present in the text")
	}

	if score < 0.4 {
		reasons = append(reasons, "content appears reliable based on this analysis")
	}

	if score >= 0.4 && score <= 0.65 {
		reasons = append(reasons, "score in the gray zone, manual verification recommended")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "no major indicator detected")
	}

	return reasons
}
