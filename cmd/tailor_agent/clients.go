package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/db"
	"github.com/jonathan/resume-tailor/internal/embedding"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/types"
)

// newClients builds the generation and embedding collaborators for the
// configured provider. Both are stateless and shared across all pairs.
func newClients(ctx context.Context, cfg *config.Config) (llm.Client, embedding.Client, error) {
	provider := llm.Provider(cfg.Provider)
	client, err := llm.NewClient(ctx, llm.DefaultConfigFor(provider), cfg.APIKey())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	enc, err := embedding.NewClient(ctx, cfg.Provider, cfg.APIKey(), cfg.EmbeddingDimensions)
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to create embedding client: %w", err)
	}

	return client, enc, nil
}

// setAPIKey routes an --api-key flag value to the configured provider's slot.
func setAPIKey(cfg *config.Config, key string) {
	if cfg.Provider == "openai" {
		cfg.OpenAIAPIKey = key
		return
	}
	cfg.GeminiAPIKey = key
}

// writeResultFile writes one pair result as indented JSON, creating the
// parent directory when needed.
func writeResultFile(path string, result *types.PairResult) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// persistResults stores a run and its pair results in the artifact store.
func persistResults(ctx context.Context, databaseURL, batchID, mode string, results []types.PairResult) error {
	store, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	runID, err := store.CreateRun(ctx, batchID, mode, len(results))
	if err != nil {
		return err
	}

	succeeded := 0
	for i := range results {
		if results[i].Success {
			succeeded++
		}
		if err := store.SaveResult(ctx, runID, &results[i]); err != nil {
			return err
		}
	}

	return store.CompleteRun(ctx, runID, db.StatusFor(succeeded, len(results)))
}
