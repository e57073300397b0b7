package verdict

import (
	"testing"

	"github.com/veridique/veridique/internal/classify"
	"github.com/veridique/veridique/internal/feature"
	"github.com/veridique/veridique/internal/model"
	"github.com/veridique/veridique/internal/score"
)

// Full offline chain: extractor, rule scorer, pattern fallback, decider.
func decide(t *testing.T, text string) model.FinalVerdict {
	t.Helper()

	f := feature.Extract(text)
	suspicion := score.NewScorer().Score(f)
	ai := classify.FallbackScore(text)

	result, err := NewDecider(DefaultThresholds()).Decide(text, ai, suspicion, f, nil, nil)
	if err != nil {
		t.Fatalf("Decide(%q): %v", text, err)
	}
	return result
}

func TestScenario_FabricatedPoliticalClaim(t *testing.T) {
	result := decide(t, "Jean Dupont est presidante du pays")

	if result.Verdict != model.VerdictFake || !result.IsFake {
		t.Errorf("verdict = %q, want fake", result.Verdict)
	}
	if !approx(result.Confidence, 0.99) {
		t.Errorf("confidence = %v, want forced 0.99", result.Confidence)
	}
	if !approx(result.Reliability, 1.0) {
		t.Errorf("reliability = %v, want 1.0", result.Reliability)
	}
}

func TestScenario_ShortDeathAnnouncement(t *testing.T) {
	result := decide(t, "Biden est mort")

	if result.Verdict != model.VerdictFake {
		t.Errorf("verdict = %q, want fake", result.Verdict)
	}
	if result.Reliability >= 50 {
		t.Errorf("reliability = %v, want below 50", result.Reliability)
	}

	suspicion := score.NewScorer().Score(feature.Extract("Biden est mort"))
	if suspicion.RedFlags < 1 {
		t.Errorf("red flags = %d, want at least 1", suspicion.RedFlags)
	}
}

func TestScenario_SourcedArticleLooksReliable(t *testing.T) {
	text := "According to Reuters, the finance ministry presented its updated budget " +
		"figures on Tuesday. The document details spending plans for 12 departments " +
		"and was reviewed by independent economists before publication. Officials " +
		"answered questions for over two hours. The full annex runs to 140 pages."

	f := feature.Extract(text)
	suspicion := score.NewScorer().Score(f)

	if !f.HasSource {
		t.Fatal("expected the citation to be detected")
	}
	if suspicion.TrustIndicators < 2 {
		t.Errorf("trust indicators = %d, want at least 2", suspicion.TrustIndicators)
	}

	result := decide(t, text)
	if result.Verdict != model.VerdictProbablyTrue {
		t.Errorf("verdict = %q, want probably_true", result.Verdict)
	}
	if result.IsFake {
		t.Error("sourced factual article flagged as fake")
	}
}

func TestScenario_TooShortToJudge(t *testing.T) {
	result := decide(t, "trop bref")

	if result.Verdict != model.VerdictInsufficient {
		t.Errorf("verdict = %q, want insufficient", result.Verdict)
	}
}
