// Package db provides PostgreSQL persistence for screening runs and their
// shortlisted candidates.
package db

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-screener/internal/types"
)

//go:embed schema.sql
var schemaSQL string

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the screening tables if they do not exist
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// CreateRun creates a new screening run and returns its ID
func (db *DB) CreateRun(ctx context.Context, jobTitle, source string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO screening_runs (job_title, source, status) VALUES ($1, $2, $3) RETURNING id`,
		jobTitle, source, RunStatusRunning,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create screening run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a run as finished with the given status and screened count
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string, screened int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE screening_runs SET status = $2, screened = $3, completed_at = NOW() WHERE id = $1`,
		runID, status, screened,
	)
	if err != nil {
		return fmt.Errorf("failed to complete screening run: %w", err)
	}
	return nil
}

// SaveCandidate stores one analysed candidate for a run. Saving the same
// source twice within a run replaces the earlier row.
func (db *DB) SaveCandidate(ctx context.Context, runID uuid.UUID, analysis *types.CandidateAnalysis, contentHash string) error {
	rec, err := newCandidateRecord(runID, analysis, contentHash)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO screened_candidates
		     (run_id, rank, name, email, source, content_hash, overall_score, recommendation, overall_fit, analysis)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (run_id, source) DO UPDATE SET
		     rank = $2, name = $3, email = $4, content_hash = $6, overall_score = $7,
		     recommendation = $8, overall_fit = $9, analysis = $10, created_at = NOW()`,
		rec.RunID, rec.Rank, rec.Name, rec.Email, rec.Source, rec.ContentHash,
		rec.OverallScore, rec.Recommendation, rec.OverallFit, rec.Analysis,
	)
	if err != nil {
		return fmt.Errorf("failed to save candidate %s: %w", rec.Source, err)
	}
	return nil
}

// GetRun retrieves a screening run by ID
func (db *DB) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_title, source, status, screened, created_at, completed_at
		 FROM screening_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.JobTitle, &run.Source, &run.Status, &run.Screened, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get screening run: %w", err)
	}
	return &run, nil
}

// ListRuns retrieves recent screening runs
func (db *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, job_title, source, status, screened, created_at, completed_at
		 FROM screening_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list screening runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.JobTitle, &run.Source, &run.Status, &run.Screened, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan screening run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// ListCandidates returns the stored candidates of a run ordered by rank
func (db *DB) ListCandidates(ctx context.Context, runID uuid.UUID) ([]CandidateRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, run_id, rank, name, email, source, content_hash, overall_score,
		        recommendation, overall_fit, analysis, created_at
		 FROM screened_candidates WHERE run_id = $1 ORDER BY rank`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var records []CandidateRecord
	for rows.Next() {
		var r CandidateRecord
		if err := rows.Scan(&r.ID, &r.RunID, &r.Rank, &r.Name, &r.Email, &r.Source, &r.ContentHash,
			&r.OverallScore, &r.Recommendation, &r.OverallFit, &r.Analysis, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// FindCandidatesByHash returns every stored screening of the same resume text
func (db *DB) FindCandidatesByHash(ctx context.Context, contentHash string) ([]CandidateRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, run_id, rank, name, email, source, content_hash, overall_score,
		        recommendation, overall_fit, analysis, created_at
		 FROM screened_candidates WHERE content_hash = $1 ORDER BY created_at DESC`,
		contentHash,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find candidates by hash: %w", err)
	}
	defer rows.Close()

	var records []CandidateRecord
	for rows.Next() {
		var r CandidateRecord
		if err := rows.Scan(&r.ID, &r.RunID, &r.Rank, &r.Name, &r.Email, &r.Source, &r.ContentHash,
			&r.OverallScore, &r.Recommendation, &r.OverallFit, &r.Analysis, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// newCandidateRecord flattens an analysis into the columns stored per candidate
func newCandidateRecord(runID uuid.UUID, analysis *types.CandidateAnalysis, contentHash string) (*CandidateRecord, error) {
	if analysis == nil {
		return nil, fmt.Errorf("analysis is required")
	}

	payload, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	rec := &CandidateRecord{
		RunID:          runID,
		Rank:           analysis.Rank,
		Source:         analysis.Source,
		ContentHash:    contentHash,
		OverallScore:   analysis.Scores.Overall,
		Recommendation: analysis.Recommendation,
		OverallFit:     analysis.OverallFit,
		Analysis:       payload,
		Name:           types.NotProvided,
		Email:          types.NotProvided,
	}
	if c := analysis.Candidate; c != nil {
		rec.Name = c.Name
		rec.Email = c.Email
	}
	return rec, nil
}
