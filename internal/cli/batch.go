package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/veridique/veridique/internal/model"
	"github.com/veridique/veridique/internal/pipeline"
	"github.com/veridique/veridique/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Score multiple inputs from a file in parallel",
	Long: `Batch reads one input per line - a URL (scanned) or a bare text
(analyzed) - and scores them concurrently, writing one JSON report per
input into the output directory.

Example:
  veridique batch inputs.txt
  veridique batch inputs.txt --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./veridique-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	batchCmd.Flags().BoolVar(&noSearch, "no-search", false, "disable evidence web search")
	batchCmd.Flags().BoolVar(&offline, "offline", false, "no network at all")
	batchCmd.Flags().StringVar(&clfProvider, "classifier", "", "external classifier provider (openai)")
	batchCmd.Flags().StringVar(&clfModel, "model", "", "classifier model name")
}

// batchJob scores one input line.
type batchJob struct {
	index    int
	input    string
	analyzer *pipeline.Analyzer
}

// batchResult implements worker.Result.
type batchResult struct {
	index  int
	input  string
	report *model.Report
	err    error
}

func (r batchResult) GetError() error { return r.err }

func (j batchJob) Execute(ctx context.Context) worker.Result {
	var report *model.Report
	var err error

	if strings.HasPrefix(j.input, "http://") || strings.HasPrefix(j.input, "https://") {
		report, err = j.analyzer.AnalyzeURL(ctx, j.input)
	} else {
		report, err = j.analyzer.AnalyzeText(ctx, j.input)
	}

	return batchResult{index: j.index, input: j.input, report: report, err: err}
}

func runBatch(cmd *cobra.Command, args []string) error {
	inputs, err := readInputs(args[0])
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no inputs found in %s", args[0])
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.BatchWorkers = concurrency

	analyzer, err := pipeline.NewAnalyzer(cfg)
	if err != nil {
		return fmt.Errorf("init analyzer: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Processing %d inputs with %d workers\n", len(inputs), concurrency)
	}

	pool := worker.NewPool(concurrency)
	pool.Start()

	// Hard stop for the whole batch.
	timer := time.AfterFunc(batchTimeout, pool.Shutdown)
	defer timer.Stop()

	for i, input := range inputs {
		pool.Submit(batchJob{index: i, input: input, analyzer: analyzer})
	}
	results := pool.Wait()

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	failed := 0
	for _, res := range results {
		br, ok := res.(batchResult)
		if !ok {
			continue
		}
		if br.err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Error: input %d (%s): %v\n", br.index+1, model.Excerpt(br.input), br.err)
			continue
		}

		path := filepath.Join(outputDir, fmt.Sprintf("report-%03d.json", br.index+1))
		if err := renderer.RenderJSON(br.report, path); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Error: write report %d: %v\n", br.index+1, err)
		}
	}

	fmt.Printf("Processed %d inputs, %d failed, reports in %s\n", len(inputs), failed, outputDir)
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(inputs))
	}
	return nil
}

// readInputs loads non-empty, non-comment lines from the input file.
func readInputs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	var inputs []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}

	return inputs, nil
}
