package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/veridique/veridique/internal/pipeline"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Fetch a page and score its visible text",
	Long: `Scan fetches a web page (honoring robots.txt, following at most 3
redirects, reading a size-capped body), reduces it to visible text and
runs the same scoring engine used by analyze.

Example:
  veridique scan https://example.com/article
  veridique scan https://example.com/article --json report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().AddFlagSet(analyzeCmd.Flags())
}

func runScan(cmd *cobra.Command, args []string) error {
	url := args[0]
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
		fmt.Fprintf(os.Stderr, "Scanning: %s\n", url)
	}

	report, err := analyzer.AnalyzeURL(ctx, url)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	return renderOutputs(report, cfg)
}
