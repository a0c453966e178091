package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/agent"
	"github.com/jonathan/resume-tailor/internal/batch"
	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/types"
)

var batchCommand = &cobra.Command{
	Use:   "batch",
	Short: "Process many (job, candidate) pairs concurrently",
	Long: `Fans the tailoring agent out over every pair in a batch spec under a bounded
concurrency cap. Each pair runs in isolation: one pair's failure never affects
its siblings, and the batch always produces one result per pair.`,
	RunE: runBatchCmd,
}

var (
	batchConfigPath    string
	batchMode          string
	batchProvider      string
	batchAPIKey        string
	batchDBURL         string
	batchMaxConcurrent int
	batchVerbose       bool
)

func init() {
	batchCommand.Flags().StringVarP(&batchConfigPath, "config", "c", "", "Path to batch spec YAML file")
	batchCommand.Flags().StringVarP(&batchMode, "mode", "m", string(agent.FullMode), "Execution mode: full or baseline")
	batchCommand.Flags().StringVar(&batchProvider, "provider", "", "LLM provider: gemini or openai (defaults to LLM_PROVIDER env var)")
	batchCommand.Flags().StringVar(&batchAPIKey, "api-key", "", "Provider API key (defaults to GEMINI_API_KEY / OPENAI_API_KEY env var)")
	batchCommand.Flags().StringVar(&batchDBURL, "db-url", "", "PostgreSQL connection URL for artifact persistence (optional, defaults to DATABASE_URL env var)")
	batchCommand.Flags().IntVar(&batchMaxConcurrent, "max-concurrent", 0, "Concurrent pair cap (overrides the spec)")
	batchCommand.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed progress information")

	_ = batchCommand.MarkFlagRequired("config")

	rootCmd.AddCommand(batchCommand)
}

func applyBatchOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("provider") {
		cfg.Provider = batchProvider
	}
	if cmd.Flags().Changed("api-key") {
		setAPIKey(cfg, batchAPIKey)
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = batchDBURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = batchVerbose
	}
}

func runBatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := config.Load()
	applyBatchOverrides(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	mode, err := agent.ParseMode(batchMode)
	if err != nil {
		return err
	}

	spec, err := batch.LoadSpec(batchConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("max-concurrent") && batchMaxConcurrent > 0 {
		spec.MaxConcurrent = batchMaxConcurrent
	}

	pairs, err := spec.LoadPairs()
	if err != nil {
		return err
	}

	client, enc, err := newClients(ctx, &cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	executor, err := agent.NewExecutor(client, enc, cfg, mode)
	if err != nil {
		return err
	}

	fmt.Printf("Batch %s: %d pairs, %d concurrent, mode %s\n", spec.BatchID, len(pairs), spec.MaxConcurrent, mode)
	progress := newProgressRunner(executor, len(pairs), os.Stdout)
	runner := batch.NewRunner(progress, spec.MaxConcurrent)
	results := runner.Run(ctx, pairs)

	resultsPath := spec.ResultsPath()
	if err := batch.WriteResults(resultsPath, results); err != nil {
		return err
	}
	fmt.Printf("Results written to %s\n", resultsPath)

	printer := observability.NewPrinter(os.Stdout)
	summary := batch.Summarize(results)
	printer.PrintBatchSummary(summary.Total, summary.Succeeded, summary.Failed, summary.TotalAttempts)
	for i := range results {
		if !results[i].Success {
			printer.PrintPairFailure(&results[i])
		}
	}

	if cfg.DatabaseURL != "" {
		if err := persistResults(ctx, cfg.DatabaseURL, spec.BatchID, string(mode), results); err != nil {
			fmt.Printf("Warning: failed to persist results: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
		}
	}

	if summary.Total > 0 && summary.Succeeded == 0 {
		return fmt.Errorf("batch %s: all %d pairs failed", spec.BatchID, summary.Total)
	}
	return nil
}

// progressRunner decorates a PairRunner with completion-ordered progress
// lines. The runner reports pairs as they finish, not in input order.
type progressRunner struct {
	runner batch.PairRunner
	total  int
	out    io.Writer

	mu   sync.Mutex
	done int
}

func newProgressRunner(runner batch.PairRunner, total int, out io.Writer) *progressRunner {
	return &progressRunner{runner: runner, total: total, out: out}
}

//nolint:errcheck // progress output; write errors are not recoverable
func (p *progressRunner) RunPair(ctx context.Context, pair batch.Pair) *types.PairResult {
	result := p.runner.RunPair(ctx, pair)

	p.mu.Lock()
	p.done++
	n := p.done
	p.mu.Unlock()

	status := "SUCCESS"
	if result == nil || !result.Success {
		status = "FAILED"
	}
	if result != nil {
		fmt.Fprintf(p.out, "[%d/%d] %s / %s: %s\n", n, p.total, result.JobID, result.CandidateID, status)
	} else {
		fmt.Fprintf(p.out, "[%d/%d] %s\n", n, p.total, status)
	}
	return result
}
