package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/agent"
	"github.com/jonathan/resume-tailor/internal/batch"
	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/posting"
	"github.com/jonathan/resume-tailor/internal/profile"
	"github.com/jonathan/resume-tailor/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Tailor one candidate's resume to one job posting",
	Long: `Runs the full retrieve -> generate -> validate loop for a single (job, candidate) pair
and writes the accepted package (or the failure record) as a JSON artifact.`,
	RunE: runPairCmd,
}

var (
	runJob        string
	runResume     string
	runMode       string
	runProvider   string
	runAPIKey     string
	runOutputDir  string
	runDBURL      string
	runMaxRetries int
	runTopK       int
	runVerbose    bool
)

func init() {
	runCommand.Flags().StringVarP(&runJob, "job", "j", "", "Path to job posting YAML file")
	runCommand.Flags().StringVarP(&runResume, "resume", "r", "", "Path to candidate profile JSON file")
	runCommand.Flags().StringVarP(&runMode, "mode", "m", string(agent.FullMode), "Execution mode: full (retrieval + retry loop) or baseline (one-shot)")
	runCommand.Flags().StringVar(&runProvider, "provider", "", "LLM provider: gemini or openai (defaults to LLM_PROVIDER env var)")
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Provider API key (defaults to GEMINI_API_KEY / OPENAI_API_KEY env var)")
	runCommand.Flags().StringVarP(&runOutputDir, "output-dir", "o", "", "Directory for the result artifact")
	runCommand.Flags().StringVar(&runDBURL, "db-url", "", "PostgreSQL connection URL for artifact persistence (optional, defaults to DATABASE_URL env var)")
	runCommand.Flags().IntVar(&runMaxRetries, "max-retries", 0, "Validation retry budget per pair")
	runCommand.Flags().IntVar(&runTopK, "top-k", 0, "Fragments retrieved per job responsibility")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed progress information")

	_ = runCommand.MarkFlagRequired("job")
	_ = runCommand.MarkFlagRequired("resume")

	rootCmd.AddCommand(runCommand)
}

// applyRunOverrides overlays explicitly set CLI flags on the environment
// configuration. Only flags the user changed take effect.
func applyRunOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("provider") {
		cfg.Provider = runProvider
	}
	if cmd.Flags().Changed("api-key") {
		setAPIKey(cfg, runAPIKey)
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = runOutputDir
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDBURL
	}
	if cmd.Flags().Changed("max-retries") {
		cfg.MaxRetries = runMaxRetries
	}
	if cmd.Flags().Changed("top-k") {
		cfg.TopKPerRequirement = runTopK
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}
}

func runPairCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := config.Load()
	applyRunOverrides(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	mode, err := agent.ParseMode(runMode)
	if err != nil {
		return err
	}

	job, err := posting.Load(runJob)
	if err != nil {
		return err
	}
	candidate, err := profile.Load(runResume)
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

	fmt.Printf("Tailoring resume of %s to %q (%s)...\n", candidate.Name, job.Title, job.ID)
	result := executor.RunPair(ctx, batch.Pair{
		JobPath:    runJob,
		ResumePath: runResume,
		Job:        job,
		Candidate:  candidate,
	})

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintJobPosting(job)
		printer.PrintAttemptHistory(result.Metrics.AttemptHistory)
	}
	printer.PrintViolations(result.Violations)

	artifactPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_result.json", job.ID))
	if err := writeResultFile(artifactPath, result); err != nil {
		return err
	}
	fmt.Printf("Result written to %s\n", artifactPath)

	if cfg.DatabaseURL != "" {
		if err := persistResults(ctx, cfg.DatabaseURL, fmt.Sprintf("run-%s", job.ID), string(mode), []types.PairResult{*result}); err != nil {
			fmt.Printf("Warning: failed to persist result: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
		}
	}

	if !result.Success {
		return fmt.Errorf("pair %s/%s failed: %s", result.JobID, result.CandidateID, strings.Join(result.Errors, "; "))
	}

	fmt.Printf("Accepted after %d attempt(s): %d bullets, %d residual warnings\n",
		result.Metrics.Attempts, result.Metrics.BulletsGenerated, len(result.Violations.Soft()))
	return nil
}
