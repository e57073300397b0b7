package feature

import (
	"math"
	"testing"
)

func TestExtract_EmptyText(t *testing.T) {
	f := Extract("")

	if f.CharCount != 0 || f.WordCount != 0 || f.SentenceCount != 0 {
		t.Errorf("expected zeroed counts, got %+v", f)
	}
	if f.DeathClaim || f.PoliticalClaim || f.HasSource || f.Misspelling {
		t.Errorf("expected no boolean signal on empty text, got %+v", f)
	}
	if f.CapsRatio != 0 || f.ExclamationDensity != 0 {
		t.Errorf("expected zero ratios on empty text, got caps=%v excl=%v", f.CapsRatio, f.ExclamationDensity)
	}
}

func TestExtract_Counts(t *testing.T) {
	f := Extract("One two three. Four five!")

	if f.CharCount != 25 {
		t.Errorf("expected 25 chars, got %d", f.CharCount)
	}
	if f.WordCount != 5 {
		t.Errorf("expected 5 words, got %d", f.WordCount)
	}
	if f.SentenceCount != 2 {
		t.Errorf("expected 2 sentences, got %d", f.SentenceCount)
	}
}

func TestExtract_Signals(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		political bool
		death     bool
		source    bool
		typo      bool
		simple    bool
	}{
		{
			name:      "unsourced political claim with typo",
			text:      "Jean Dupont est presidante du pays",
			political: true,
			typo:      true,
		},
		{
			name:      "office holding assertion",
			text:      "Macron est le président de la France",
			political: true,
			simple:    true,
		},
		{
			name:  "death announcement",
			text:  "Biden est mort",
			death: true,
		},
		{
			name:   "sourced statement",
			text:   "Selon une étude publiée hier, les chiffres progressent.",
			source: true,
		},
		{
			name:   "simple factual claim",
			text:   "Messi est argentin",
			simple: true,
		},
		{
			name: "plain text",
			text: "Le chat dort sur le canapé depuis ce matin.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := Extract(tc.text)
			if f.PoliticalClaim != tc.political {
				t.Errorf("PoliticalClaim = %v, want %v", f.PoliticalClaim, tc.political)
			}
			if f.DeathClaim != tc.death {
				t.Errorf("DeathClaim = %v, want %v", f.DeathClaim, tc.death)
			}
			if f.HasSource != tc.source {
				t.Errorf("HasSource = %v, want %v", f.HasSource, tc.source)
			}
			if f.Misspelling != tc.typo {
				t.Errorf("Misspelling = %v, want %v", f.Misspelling, tc.typo)
			}
			if f.SimpleFactualClaim != tc.simple {
				t.Errorf("SimpleFactualClaim = %v, want %v", f.SimpleFactualClaim, tc.simple)
			}
		})
	}
}

func TestExtract_AlarmistCount(t *testing.T) {
	f := Extract("URGENT: shocking hidden truth revealed about the vote")

	// urgent, shocking, hidden truth, revealed
	if f.AlarmistCount != 4 {
		t.Errorf("expected 4 alarmist hits, got %d", f.AlarmistCount)
	}
}

func TestExtract_Ratios(t *testing.T) {
	f := Extract("HELLO world")
	want := 5.0 / 11.0
	if math.Abs(f.CapsRatio-want) > 1e-9 {
		t.Errorf("CapsRatio = %v, want %v", f.CapsRatio, want)
	}

	f = Extract("Wow!!!")
	want = 3.0 / 6.0
	if math.Abs(f.ExclamationDensity-want) > 1e-9 {
		t.Errorf("ExclamationDensity = %v, want %v", f.ExclamationDensity, want)
	}
}

func TestExtract_HasNumbers(t *testing.T) {
	if !Extract("Il y a 42 raisons de vérifier.").HasNumbers {
		t.Error("expected HasNumbers for text with digits")
	}
	if Extract("Aucun chiffre ici.").HasNumbers {
		t.Error("expected no HasNumbers for text without digits")
	}
}
