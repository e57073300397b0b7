package feature

import (
	"regexp"
	"strings"

	"github.com/veridique/veridique/internal/model"
)

// Vocabulary lists are bilingual (English/French) literal substrings,
// matched case-insensitively against the whole text.
var (
	alarmistKeywords = []string{
		"urgent", "breaking", "shocking", "exposed", "revealed",
		"secret", "hidden truth", "they don't want you to know",
		"exclusif", "révélé", "choc", "incroyable", "vous ne le croirez pas",
	}

	emotionalWords = []string{
		"amazing", "incredible", "unbelievable", "terrifying", "horrifying",
		"incroyable", "terrifiant", "horrible", "épouvantable",
	}

	deathPhrases = []string{
		"est mort", "is dead", "décédé", "passed away",
		"a été tué", "has been killed", "assassiné",
	}

	sourceKeywords = []string{
		"source", "according to", "study", "research", "report",
		"selon", "étude", "recherche", "rapport", "journal", "média",
		"bbc", "reuters", "ap news", "le monde", "france info",
		"published", "publié", "confirmed", "confirmé",
	}
)

// Office-holding assertions ("X is the president") are the strongest
// single heuristic: checkable claims that fabricated stories state
// without attribution.
var politicalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(est|is)\s+(le|la|un|une)\s+(président|president|premier ministre|prime minister|roi|king|reine|queen)`),
	regexp.MustCompile(`\b(est|is)\s+((le|la)\s+)?(présidente|presidente|presidante|president)`),
	regexp.MustCompile(`\b(est|is)\s+(élu|elected|nommé|appointed)\s+(président|president)`),
	regexp.MustCompile(`\b(est|is)\s+(le|la)\s+.*(président|president|presidante)`),
}

var (
	misspellingPattern = regexp.MustCompile(`\bpresidante\b`)
	digitPattern       = regexp.MustCompile(`[0-9]+`)

	// Terse verifiable statements ("Messi est argentin") are exempt from
	// the short-text penalty.
	simpleClaimPattern = regexp.MustCompile(`\b(est|is|a été|has been)\s+(le|la|un|une|argentin|français|américain|président)`)
)

// Extract derives the full FeatureSet from raw text. Pure: no side
// effects, zeroed defaults on empty input.
func Extract(text string) model.FeatureSet {
	at := model.NewAnalyzedText(text)
	lower := strings.ToLower(text)

	f := model.FeatureSet{
		CharCount:     at.CharCount,
		WordCount:     at.WordCount,
		SentenceCount: at.SentenceCount,
	}
	if at.CharCount == 0 {
		return f
	}

	f.AlarmistCount = countHits(lower, alarmistKeywords)
	f.EmotionalCount = countHits(lower, emotionalWords)
	f.DeathClaim = anyHit(lower, deathPhrases)
	f.HasSource = anyHit(lower, sourceKeywords)
	f.PoliticalClaim = matchAny(lower, politicalPatterns)
	f.Misspelling = misspellingPattern.MatchString(lower)
	f.HasNumbers = digitPattern.MatchString(text)
	f.SimpleFactualClaim = simpleClaimPattern.MatchString(lower)

	f.CapsRatio = model.UppercaseRatio(text)
	f.ExclamationDensity = float64(strings.Count(text, "!")) / float64(at.CharCount)

	return f
}

func countHits(lower string, vocab []string) int {
	n := 0
	for _, kw := range vocab {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

func anyHit(lower string, vocab []string) bool {
	for _, kw := range vocab {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func matchAny(lower string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}
