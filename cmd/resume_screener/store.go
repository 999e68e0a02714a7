package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/types"
)

// failTimeout bounds the status update written after a cancelled run
const failTimeout = 5 * time.Second

// screeningStore is the part of *db.DB a screening run writes to
type screeningStore interface {
	CreateRun(ctx context.Context, jobTitle, source string) (uuid.UUID, error)
	CompleteRun(ctx context.Context, runID uuid.UUID, status string, screened int) error
	SaveCandidate(ctx context.Context, runID uuid.UUID, analysis *types.CandidateAnalysis, contentHash string) error
	FindCandidatesByHash(ctx context.Context, contentHash string) ([]db.CandidateRecord, error)
}

// connectDatabase opens the database at url, falling back to DATABASE_URL,
// and makes sure the screening tables exist.
func connectDatabase(ctx context.Context, url string) (*db.DB, error) {
	if url == "" {
		url = os.Getenv("DATABASE_URL")
	}
	if url == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	database, err := db.Connect(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// runRecorder writes one screening run as it progresses. A nil recorder
// means persistence is disabled and every method is a no-op.
type runRecorder struct {
	store screeningStore
	runID uuid.UUID
}

// startRun records a running screening run
func startRun(ctx context.Context, store screeningStore, jobTitle, source string) (*runRecorder, error) {
	runID, err := store.CreateRun(ctx, jobTitle, source)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("run_id", runID.String()).Msg("started screening run")
	return &runRecorder{store: store, runID: runID}, nil
}

// finish stores the shortlisted candidates and marks the run completed.
// hashes maps a candidate's source to the hash of its resume text.
func (r *runRecorder) finish(ctx context.Context, shortlist *types.Shortlist, hashes map[string]string) error {
	if r == nil {
		return nil
	}

	for i := range shortlist.Candidates {
		analysis := &shortlist.Candidates[i]
		if err := r.store.SaveCandidate(ctx, r.runID, analysis, hashes[analysis.Source]); err != nil {
			r.fail()
			return fmt.Errorf("failed to save shortlist: %w", err)
		}
	}

	if err := r.store.CompleteRun(ctx, r.runID, db.RunStatusCompleted, shortlist.Screened); err != nil {
		return err
	}
	logger.Info().Str("run_id", r.runID.String()).Msg("saved screening run")
	return nil
}

// fail marks the run failed. It uses its own context so a cancelled run
// still gets its final status.
func (r *runRecorder) fail() {
	if r == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), failTimeout)
	defer cancel()

	if err := r.store.CompleteRun(ctx, r.runID, db.RunStatusFailed, 0); err != nil {
		logger.Error().Err(err).Str("run_id", r.runID.String()).Msg("failed to mark screening run as failed")
		return
	}
	logger.Warn().Str("run_id", r.runID.String()).Msg("screening run marked failed")
}

// reportPreviouslyScreened logs every resume whose text was already stored by
// an earlier run and returns how many there were. Lookup errors are logged only.
func reportPreviouslyScreened(ctx context.Context, store screeningStore, docs []*ingestion.Document) int {
	seen := 0
	for _, d := range docs {
		if d.Metadata == nil {
			continue
		}
		matches, err := store.FindCandidatesByHash(ctx, d.Metadata.Hash)
		if err != nil {
			logger.Warn().Err(err).Str("resume", d.Resume.Name).Msg("could not look up earlier screenings")
			continue
		}
		if len(matches) == 0 {
			continue
		}
		seen++
		logger.Info().
			Str("resume", d.Resume.Name).
			Int("earlier_screenings", len(matches)).
			Str("last_run_id", matches[0].RunID.String()).
			Int("last_rank", matches[0].Rank).
			Msg("resume was screened before")
	}
	return seen
}
