// Package db provides PostgreSQL persistence for batch runs and pair
// results. The store is optional: the CLI runs without it when no database
// URL is configured.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// CreateRun creates a new batch run record and returns its ID
func (s *Store) CreateRun(ctx context.Context, batchID, mode string, pairCount int) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO batch_runs (batch_id, mode, pair_count, status)
		 VALUES ($1, $2, $3, 'running')
		 RETURNING id`,
		batchID, mode, pairCount,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a batch run as finished with the given status
func (s *Store) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE batch_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveResult stores one pair's terminal result as a JSON artifact,
// replacing any earlier result for the same pair within the run
func (s *Store) SaveResult(ctx context.Context, runID uuid.UUID, result *types.PairResult) error {
	content, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal pair result: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO pair_results (run_id, job_id, candidate_id, success, content)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (run_id, job_id, candidate_id)
		 DO UPDATE SET success = $4, content = $5, created_at = NOW()`,
		runID, result.JobID, result.CandidateID, result.Success, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save result for %s/%s: %w", result.JobID, result.CandidateID, err)
	}
	return nil
}

// GetResults retrieves every pair result saved for a run
func (s *Store) GetResults(ctx context.Context, runID uuid.UUID) ([]types.PairResult, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT content FROM pair_results WHERE run_id = $1 ORDER BY created_at ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var results []types.PairResult
	for rows.Next() {
		var content []byte
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		var result types.PairResult
		if err := json.Unmarshal(content, &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}
		results = append(results, result)
	}
	return results, nil
}

// GetRun retrieves a batch run by ID
func (s *Store) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := s.pool.QueryRow(ctx,
		`SELECT id, batch_id, mode, pair_count, status, created_at, completed_at
		 FROM batch_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.BatchID, &run.Mode, &run.PairCount, &run.Status, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns retrieves recent batch runs
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, batch_id, mode, pair_count, status, created_at, completed_at
		 FROM batch_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.BatchID, &run.Mode, &run.PairCount, &run.Status, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}
