package model

import (
	"strings"
	"unicode"
)

// AnalyzedText is the immutable input to the scoring engine, with the
// derived counts every downstream component agrees on.
type AnalyzedText struct {
	Raw           string `json:"raw"`
	CharCount     int    `json:"char_count"`
	WordCount     int    `json:"word_count"`
	SentenceCount int    `json:"sentence_count"`
}

// NewAnalyzedText derives the counts from a raw string. An empty string
// yields zeroed counts, never an error.
func NewAnalyzedText(raw string) AnalyzedText {
	return AnalyzedText{
		Raw:           raw,
		CharCount:     len(raw),
		WordCount:     len(strings.Fields(raw)),
		SentenceCount: countSentences(raw),
	}
}

// countSentences counts sentence terminators, the same way the heuristic
// rules expect them (a bare '.' counts, abbreviations included).
func countSentences(s string) int {
	n := 0
	for _, r := range s {
		if r == '.' || r == '!' || r == '?' {
			n++
		}
	}
	return n
}

// UppercaseRatio returns uppercase letters over total byte length.
func UppercaseRatio(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	upper := 0
	for _, r := range s {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return float64(upper) / float64(len(s))
}
