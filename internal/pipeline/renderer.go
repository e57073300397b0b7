package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/veridique/veridique/internal/model"
)

// Renderer writes reports as JSON, Markdown and a terse stdout summary.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	b.WriteString("# Veridique Analysis\n\n")
	fmt.Fprintf(&b, "- **Input**: %s\n", report.Input)
	if report.SourceURL != "" {
		fmt.Fprintf(&b, "- **Source**: %s\n", report.SourceURL)
	}
	fmt.Fprintf(&b, "- **Analyzed**: %s\n\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 UTC"))

	b.WriteString("## Verdict\n\n")
	fmt.Fprintf(&b, "- **Verdict**: %s\n", report.Detection.Verdict)
	fmt.Fprintf(&b, "- **Confidence**: %.2f\n", report.Detection.Confidence)
	fmt.Fprintf(&b, "- **Reliability**: %.1f%%\n", report.Detection.Reliability)
	fmt.Fprintf(&b, "- **Flagged as fake**: %v\n\n", report.Detection.IsFake)

	b.WriteString("## Reasons\n\n")
	for _, reason := range report.Detection.Reasons {
		fmt.Fprintf(&b, "- %s\n", reason)
	}
	b.WriteString("\n")

	b.WriteString("## Signals\n\n")
	fmt.Fprintf(&b, "| Signal | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| AI score (%s) | %.2f |\n", report.AIProvider, report.AIScore)
	fmt.Fprintf(&b, "| Suspicion score | %.2f |\n", report.Suspicion.Score)
	fmt.Fprintf(&b, "| Red flags | %d |\n", report.Suspicion.RedFlags)
	fmt.Fprintf(&b, "| Trust indicators | %d |\n", report.Suspicion.TrustIndicators)
	fmt.Fprintf(&b, "| Sentiment | %s (%.2f) |\n", report.Sentiment.Label, report.Sentiment.Score)
	b.WriteString("\n")

	if report.Evidence != nil {
		b.WriteString("## Evidence\n\n")
		fmt.Fprintf(&b, "- **Verdict**: %s (confidence %.2f)\n", report.Evidence.State, report.Evidence.Confidence)
		fmt.Fprintf(&b, "- **Signals**: %d corroborating, %d contradicting\n\n", report.Evidence.TrueSignals, report.Evidence.FalseSignals)
		for i, res := range report.Evidence.Results {
			if i >= 10 {
				fmt.Fprintf(&b, "- ... and %d more results\n", len(report.Evidence.Results)-10)
				break
			}
			fmt.Fprintf(&b, "- [%s](%s)\n", res.Title, res.URL)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Recommendation\n\n")
	b.WriteString(report.Recommendation)
	b.WriteString("\n")

	if r.includeFooter {
		b.WriteString("\n---\nGenerated by veridique. Heuristic analysis, not ground truth: verify important claims with primary sources.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints the one-screen result.
func (r *Renderer) RenderSummary(w io.Writer, report *model.Report) {
	fmt.Fprintf(w, "Verdict:     %s\n", report.Detection.Verdict)
	fmt.Fprintf(w, "Confidence:  %.2f\n", report.Detection.Confidence)
	fmt.Fprintf(w, "Reliability: %.1f%%\n", report.Detection.Reliability)
	for _, reason := range report.Detection.Reasons {
		fmt.Fprintf(w, "  - %s\n", reason)
	}
	fmt.Fprintf(w, "\n%s\n", report.Recommendation)
}
