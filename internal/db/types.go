package db

import (
	"time"

	"github.com/google/uuid"
)

// Run statuses
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Run represents one persisted batch run
type Run struct {
	ID          uuid.UUID  `json:"id"`
	BatchID     string     `json:"batch_id"`
	Mode        string     `json:"mode"`
	PairCount   int        `json:"pair_count"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// StatusFor maps batch outcomes onto a run status: a run completes when
// every pair got a result, even if some pairs failed, and fails only when
// no pair succeeded.
func StatusFor(succeeded, total int) string {
	if total > 0 && succeeded == 0 {
		return StatusFailed
	}
	return StatusCompleted
}
