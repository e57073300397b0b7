package classify

import (
	"regexp"
	"strings"
)

// The fallback is a deliberately small standalone heuristic, independent
// of the full rule scorer. It keeps the engine sighted when no external
// classifier is configured or the configured one fails.

var fallbackKeywords = []string{
	"breaking", "shocking", "you won't believe", "doctors hate",
	"secret", "they don't want you to know", "miracle", "guaranteed",
	"exclusif", "révélé", "choc", "incroyable", "vous ne le croirez pas",
	"click here", "limited time", "act now", "urgent",
}

var fallbackDeathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(est mort|is dead|décédé|passed away)\b`),
	regexp.MustCompile(`\b(a été tué|has been killed|assassinated)\b`),
}

var fallbackPoliticalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(est|is)\s+(le|la|un|une)\s+(président|president|premier ministre|prime minister|roi|king|reine|queen)`),
	regexp.MustCompile(`\b(est|is)\s+(le|la)\s+(présidente|presidente|president)`),
	regexp.MustCompile(`\b(est|is)\s+(élu|elected|nommé|appointed)\s+(président|president)`),
}

var fallbackSourceHints = []string{"selon", "according", "source"}

// FallbackScore produces an ai_score substitute from text patterns alone.
// Starts neutral-low and adds weighted bumps, clamped to [0.2, 0.8].
func FallbackScore(text string) float64 {
	lower := strings.ToLower(text)
	words := strings.Fields(text)

	score := 0.3

	hits := 0
	for _, kw := range fallbackKeywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	bump := float64(hits) * 0.1
	if bump > 0.3 {
		bump = 0.3
	}
	score += bump

	deathHits := 0
	for _, p := range fallbackDeathPatterns {
		if p.MatchString(lower) {
			deathHits++
		}
	}
	if deathHits > 0 && len(words) <= 15 {
		score += 0.25
	}

	political := false
	for _, p := range fallbackPoliticalPatterns {
		if p.MatchString(lower) {
			political = true
			break
		}
	}
	if political && len(words) <= 15 {
		score += 0.35
		sourced := false
		for _, hint := range fallbackSourceHints {
			if strings.Contains(lower, hint) {
				sourced = true
				break
			}
		}
		if !sourced {
			score += 0.2
		}
	}

	switch {
	case len(words) < 5:
		score += 0.15
	case len(words) < 10:
		score += 0.05
	}

	if score < 0.2 {
		return 0.2
	}
	if score > 0.8 {
		return 0.8
	}
	return score
}
