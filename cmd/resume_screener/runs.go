package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/types"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect stored screening runs",
	Long:  "List screening runs saved by 'screen --db-url' and show the shortlist stored for one run.",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent screening runs",
	RunE:  runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show a screening run and its shortlisted candidates",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

var (
	runsDatabaseURL string
	runsLimit       int
)

func init() {
	runsCmd.PersistentFlags().StringVar(&runsDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	runsListCmd.Flags().IntVar(&runsLimit, "limit", 20, "Maximum number of runs to list")

	runsCmd.AddCommand(runsListCmd, runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}

// runHistory is the part of *db.DB the runs command reads from
type runHistory interface {
	ListRuns(ctx context.Context, limit int) ([]db.Run, error)
	GetRun(ctx context.Context, runID uuid.UUID) (*db.Run, error)
	ListCandidates(ctx context.Context, runID uuid.UUID) ([]db.CandidateRecord, error)
}

// runReport is a stored run with its decoded shortlist
type runReport struct {
	Run        *db.Run                   `json:"run"`
	Candidates []types.CandidateAnalysis `json:"candidates"`
}

func runRunsList(cmd *cobra.Command, _ []string) error {
	if runsLimit <= 0 {
		return fmt.Errorf("--limit must be positive")
	}

	ctx := context.Background()
	database, err := connectDatabase(ctx, runsDatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	runs, err := listRuns(ctx, database, runsLimit)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), "", runs)
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	runID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid run-id: %w", err)
	}

	ctx := context.Background()
	database, err := connectDatabase(ctx, runsDatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	report, err := loadRunReport(ctx, database, runID)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), "", report)
}

// listRuns returns recent runs, never nil so an empty history prints as []
func listRuns(ctx context.Context, history runHistory, limit int) ([]db.Run, error) {
	runs, err := history.ListRuns(ctx, limit)
	if err != nil {
		return nil, err
	}
	if runs == nil {
		runs = []db.Run{}
	}
	return runs, nil
}

// loadRunReport reads a run and decodes the analysis stored for each candidate
func loadRunReport(ctx context.Context, history runHistory, runID uuid.UUID) (*runReport, error) {
	run, err := history.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, fmt.Errorf("run not found: %s", runID)
	}

	records, err := history.ListCandidates(ctx, runID)
	if err != nil {
		return nil, err
	}

	report := &runReport{Run: run, Candidates: make([]types.CandidateAnalysis, 0, len(records))}
	for _, rec := range records {
		var analysis types.CandidateAnalysis
		if err := json.Unmarshal(rec.Analysis, &analysis); err != nil {
			return nil, fmt.Errorf("failed to decode candidate %s: %w", rec.Source, err)
		}
		report.Candidates = append(report.Candidates, analysis)
	}
	return report, nil
}
