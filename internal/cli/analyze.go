package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/veridique/veridique/internal/model"
	"github.com/veridique/veridique/internal/pipeline"
)

var (
	outJSON       string
	outMD         string
	timeout       time.Duration
	userAgent     string
	maxBytes      int64
	noCache       bool
	noFooter      bool
	noSearch      bool
	offline       bool
	clfProvider   string
	clfModel      string
	fakeThreshold float64
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <text>",
	Short: "Score a text for disinformation signals",
	Long: `Analyze fuses four signals into one verdict:
- an optional external classifier score (with a local pattern fallback)
- a heuristic suspicion score over extracted text features
- an evidence verdict aggregated from web search results
- a static known-fact table lookup

Example:
  veridique analyze "Jean Dupont est presidante du pays"
  veridique analyze "..." --json report.json --md report.md
  veridique analyze "..." --classifier openai --model gpt-4o-mini
  veridique analyze "..." --offline`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// HTTP flags
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().StringVar(&userAgent, "ua", "Veridique/0.1 (+https://github.com/veridique/veridique)", "HTTP User-Agent")
	analyzeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh retrieval)")

	// Collaborator flags
	analyzeCmd.Flags().BoolVar(&noSearch, "no-search", false, "disable evidence web search")
	analyzeCmd.Flags().BoolVar(&offline, "offline", false, "no network at all: heuristics, fallback classifier and fact table only")
	analyzeCmd.Flags().StringVar(&clfProvider, "classifier", "", "external classifier provider (openai; empty = local fallback)")
	analyzeCmd.Flags().StringVar(&clfModel, "model", "", "classifier model name")

	// Engine flags
	analyzeCmd.Flags().Float64Var(&fakeThreshold, "fake-threshold", 0.65, "final score above this is flagged fake")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	analyzer, err := pipeline.NewAnalyzer(cfg)
	if err != nil {
		return fmt.Errorf("init analyzer: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing %d chars (search=%v, classifier=%q)\n",
			len(text), cfg.Search.Enabled, cfg.Classifier.Provider)
	}

	report, err := analyzer.AnalyzeText(ctx, text)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	return renderOutputs(report, cfg)
}

// buildConfig assembles the runtime configuration from defaults and
// flags. Classifier keys come from the environment, never from flags.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	cfg.Engine.FakeThreshold = fakeThreshold

	if noSearch || offline {
		cfg.Search.Enabled = false
	}

	if clfProvider != "" && !offline {
		cfg.Classifier.Provider = clfProvider
		cfg.Classifier.Model = clfModel

		switch clfProvider {
		case "openai":
			cfg.Classifier.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.Classifier.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		}
	}

	return cfg, nil
}

func renderOutputs(report *model.Report, cfg *model.Config) error {
	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)

	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", outJSON)
		}
	}

	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(os.Stdout, report)
	return nil
}
