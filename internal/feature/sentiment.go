package feature

import (
	"strings"

	"github.com/veridique/veridique/internal/model"
)

var (
	positiveWords = []string{"good", "great", "excellent", "positive", "success", "happy"}
	negativeWords = []string{"bad", "terrible", "awful", "negative", "failure", "sad", "horrible"}
	neutralWords  = []string{"fact", "information", "data", "report", "study"}
)

// AnalyzeSentiment is a keyword-count bias probe. It never feeds the
// scoring arithmetic; it only annotates the report.
func AnalyzeSentiment(text string) model.Sentiment {
	lower := strings.ToLower(text)

	pos := countHits(lower, positiveWords)
	neg := countHits(lower, negativeWords)
	neu := countHits(lower, neutralWords)

	total := pos + neg + neu
	label := "neutral"
	score := 0.5

	switch {
	case total == 0:
	case pos > neg:
		label = "positive"
		score = 0.5 + float64(pos)/float64(total)*0.3
	case neg > pos:
		label = "negative"
		score = 0.5 - float64(neg)/float64(total)*0.3
	}

	return model.Sentiment{
		Label:        label,
		Score:        score,
		BiasDetected: score-0.5 > 0.3 || 0.5-score > 0.3,
	}
}

// ComputeMetrics derives readability numbers for the report envelope.
func ComputeMetrics(text string) model.Metrics {
	words := strings.Fields(text)

	sentences := 0
	for _, s := range strings.Split(text, ".") {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	divisor := sentences
	if divisor == 0 {
		divisor = 1
	}

	readability := "complex"
	switch {
	case len(words) < 20:
		readability = "easy"
	case len(words) < 50:
		readability = "medium"
	}

	return model.Metrics{
		WordCount:       len(words),
		SentenceCount:   sentences,
		AvgWordsPerSent: float64(len(words)) / float64(divisor),
		CharCount:       len(text),
		Readability:     readability,
	}
}
