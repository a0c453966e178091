package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/embedding"
	"github.com/jonathan/resume-tailor/internal/index"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/posting"
	"github.com/jonathan/resume-tailor/internal/profile"
	"github.com/jonathan/resume-tailor/internal/retrieval"
)

var retrieveCommand = &cobra.Command{
	Use:   "retrieve",
	Short: "Inspect which resume fragments match a job's responsibilities",
	Long: `Builds the fragment index for a candidate and runs the per-responsibility
similarity search without generating anything. Useful for debugging why a
particular accomplishment is (or is not) being surfaced for a job.`,
	RunE: runRetrieveCmd,
}

var (
	retrieveJob      string
	retrieveResume   string
	retrieveProvider string
	retrieveAPIKey   string
	retrieveTopK     int
)

func init() {
	retrieveCommand.Flags().StringVarP(&retrieveJob, "job", "j", "", "Path to job posting YAML file")
	retrieveCommand.Flags().StringVarP(&retrieveResume, "resume", "r", "", "Path to candidate profile JSON file")
	retrieveCommand.Flags().StringVar(&retrieveProvider, "provider", "", "Embedding provider: gemini or openai (defaults to LLM_PROVIDER env var)")
	retrieveCommand.Flags().StringVar(&retrieveAPIKey, "api-key", "", "Provider API key (defaults to GEMINI_API_KEY / OPENAI_API_KEY env var)")
	retrieveCommand.Flags().IntVar(&retrieveTopK, "top-k", 0, "Fragments retrieved per job responsibility")

	_ = retrieveCommand.MarkFlagRequired("job")
	_ = retrieveCommand.MarkFlagRequired("resume")

	rootCmd.AddCommand(retrieveCommand)
}

func runRetrieveCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := config.Load()
	if cmd.Flags().Changed("provider") {
		cfg.Provider = retrieveProvider
	}
	if cmd.Flags().Changed("api-key") {
		setAPIKey(&cfg, retrieveAPIKey)
	}
	if cmd.Flags().Changed("top-k") {
		cfg.TopKPerRequirement = retrieveTopK
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	job, err := posting.Load(retrieveJob)
	if err != nil {
		return err
	}
	candidate, err := profile.Load(retrieveResume)
	if err != nil {
		return err
	}

	enc, err := embedding.NewClient(ctx, cfg.Provider, cfg.APIKey(), cfg.EmbeddingDimensions)
	if err != nil {
		return fmt.Errorf("failed to create embedding client: %w", err)
	}

	fragments := profile.Fragments(candidate)
	idx, err := index.Build(ctx, enc, fragments)
	if err != nil {
		return err
	}
	fmt.Printf("Indexed %d fragments (%d dimensions) for %s\n", idx.Size(), idx.Dimension(), candidate.Name)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJobPosting(job)

	for _, responsibility := range job.Responsibilities {
		matches, err := idx.Search(ctx, responsibility, cfg.TopKPerRequirement)
		if err != nil {
			return fmt.Errorf("search for %q: %w", responsibility, err)
		}
		fmt.Printf("\nResponsibility: %s\n", responsibility)
		printer.PrintRetrievedMatches(matches)
	}

	merged, err := retrieval.ForJob(ctx, idx, job, cfg.TopKPerRequirement)
	if err != nil {
		return err
	}
	top := retrieval.Aggregate(merged, cfg.TopKOverall)
	fmt.Printf("\nAggregated context (%d unique fragments):\n", len(top))
	printer.PrintRetrievedMatches(top)

	return nil
}
