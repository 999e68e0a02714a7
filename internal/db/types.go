package db

import (
	"time"

	"github.com/google/uuid"
)

// Run status constants
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// Run represents a screening run record
type Run struct {
	ID          uuid.UUID  `json:"id"`
	JobTitle    string     `json:"job_title"`
	Source      string     `json:"source"`
	Status      string     `json:"status"`
	Screened    int        `json:"screened"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// CandidateRecord is one shortlisted candidate stored for a run.
// Analysis holds the full CandidateAnalysis JSON.
type CandidateRecord struct {
	ID             uuid.UUID `json:"id"`
	RunID          uuid.UUID `json:"run_id"`
	Rank           int       `json:"rank"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Source         string    `json:"source"`
	ContentHash    string    `json:"content_hash"`
	OverallScore   int       `json:"overall_score"`
	Recommendation string    `json:"recommendation"`
	OverallFit     string    `json:"overall_fit"`
	Analysis       []byte    `json:"analysis"`
	CreatedAt      time.Time `json:"created_at"`
}
