package facts

import (
	"strings"

	"github.com/veridique/veridique/internal/model"
)

// fact is one entry of the static allowlist: a claim fragment and whether
// the fragment, when asserted, is verified true or false.
type fact struct {
	claim    string
	verified bool
}

// The table is a fixed allowlist, not a knowledge base: a handful of
// office-holders, named-entity facts and one known fabrication marker.
var knownFacts = []fact{
	{claim: "emmanuel macron", verified: true},
	{claim: "joe biden", verified: true},

	{claim: "messi est argentin", verified: true},
	{claim: "messi est argentinien", verified: true},
	{claim: "messi est français", verified: false},

	{claim: "presidante", verified: false},
}

// Table resolves texts against the static fact list. Stateless; used only
// as a fallback when no live evidence verdict was obtained.
type Table struct {
	facts []fact
}

// NewTable returns the built-in fact table.
func NewTable() *Table {
	return &Table{facts: knownFacts}
}

// Lookup matches the text against every entry, in both directions: the
// fact fragment may appear inside the text, or the whole text inside a
// longer fact entry.
func (t *Table) Lookup(text string) model.FactMatch {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return model.FactMatch{}
	}

	var match model.FactMatch
	for _, f := range t.facts {
		if strings.Contains(lower, f.claim) || strings.Contains(f.claim, lower) {
			match.Matches = append(match.Matches, f.claim)
			if f.verified {
				match.VerifiedTrue = true
			} else {
				match.VerifiedFalse = true
			}
		}
	}

	// Nationality assertions about Messi are verified regardless of exact
	// phrasing.
	if strings.Contains(lower, "messi") &&
		(strings.Contains(lower, "argentin") || strings.Contains(lower, "argentine")) {
		match.VerifiedTrue = true
		if !containsStr(match.Matches, "messi est argentin") {
			match.Matches = append(match.Matches, "messi est argentin")
		}
	}

	return match
}

func containsStr(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
