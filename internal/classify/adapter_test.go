package classify

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"unicode/utf8"
)

type stubProvider struct {
	result  Classification
	err     error
	gotText string
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Classify(_ context.Context, text string) (Classification, error) {
	s.gotText = text
	return s.result, s.err
}

func (s *stubProvider) IsAvailable(_ context.Context) bool { return true }

func TestAdapter_NilProviderUsesFallback(t *testing.T) {
	adapter := NewAdapter(nil, 0)

	text := "the committee published its annual findings in a detailed document over several pages"
	got, name := adapter.Score(context.Background(), text)

	if name != "fallback" {
		t.Errorf("provider name = %q, want fallback", name)
	}
	if want := FallbackScore(text); got != want {
		t.Errorf("score = %v, want fallback value %v", got, want)
	}
}

func TestAdapter_LabelMapping(t *testing.T) {
	cases := []struct {
		name   string
		result Classification
		want   float64
	}{
		{"negative maps directly", Classification{Label: "NEGATIVE", Score: 0.91}, 0.91},
		{"positive maps to complement", Classification{Label: "POSITIVE", Score: 0.8}, 0.2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubProvider{result: tc.result}
			adapter := NewAdapter(stub, 512)

			got, name := adapter.Score(context.Background(), "some text to classify")
			if name != "stub" {
				t.Errorf("provider name = %q, want stub", name)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("score = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAdapter_ErrorFallsBack(t *testing.T) {
	stub := &stubProvider{err: errors.New("boom")}
	adapter := NewAdapter(stub, 512)

	text := "Biden est mort"
	got, name := adapter.Score(context.Background(), text)

	if name != "fallback" {
		t.Errorf("provider name = %q, want fallback", name)
	}
	if want := FallbackScore(text); got != want {
		t.Errorf("score = %v, want fallback value %v", got, want)
	}
}

func TestAdapter_TruncatesOnRuneBoundary(t *testing.T) {
	stub := &stubProvider{result: Classification{Label: "NEGATIVE", Score: 0.5}}
	adapter := NewAdapter(stub, 511)

	// two-byte runes, so 511 lands mid-rune
	adapter.Score(context.Background(), strings.Repeat("é", 300))

	if len(stub.gotText) != 510 {
		t.Errorf("truncated length = %d, want 510", len(stub.gotText))
	}
	if !utf8.ValidString(stub.gotText) {
		t.Error("truncation split a rune")
	}
}

func TestParseClassification(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    Classification
		wantErr bool
	}{
		{
			name: "plain json",
			raw:  `{"label": "NEGATIVE", "score": 0.87}`,
			want: Classification{Label: "NEGATIVE", Score: 0.87},
		},
		{
			name: "fenced json",
			raw:  "```json\n{\"label\": \"positive\", \"score\": 0.6}\n```",
			want: Classification{Label: "POSITIVE", Score: 0.6},
		},
		{
			name:    "unknown label",
			raw:     `{"label": "MAYBE", "score": 0.5}`,
			wantErr: true,
		},
		{
			name:    "score out of range",
			raw:     `{"label": "NEGATIVE", "score": 1.4}`,
			wantErr: true,
		},
		{
			name:    "not json",
			raw:     "the text seems negative",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseClassification(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}
