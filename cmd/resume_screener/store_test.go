package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/types"
)

type completion struct {
	status   string
	screened int
}

// memoryStore keeps runs in memory in place of PostgreSQL
type memoryStore struct {
	runID       uuid.UUID
	createErr   error
	saveErr     error
	lookupErr   error
	saved       []db.CandidateRecord
	completions []completion
	byHash      map[string][]db.CandidateRecord
	run         *db.Run
}

func (m *memoryStore) CreateRun(_ context.Context, _, _ string) (uuid.UUID, error) {
	if m.createErr != nil {
		return uuid.Nil, m.createErr
	}
	m.runID = uuid.New()
	return m.runID, nil
}

func (m *memoryStore) CompleteRun(_ context.Context, _ uuid.UUID, status string, screened int) error {
	m.completions = append(m.completions, completion{status: status, screened: screened})
	return nil
}

func (m *memoryStore) SaveCandidate(_ context.Context, runID uuid.UUID, analysis *types.CandidateAnalysis, contentHash string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	payload, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	rec := db.CandidateRecord{
		RunID:       runID,
		Rank:        analysis.Rank,
		Source:      analysis.Source,
		ContentHash: contentHash,
		Analysis:    payload,
	}
	if analysis.Candidate != nil {
		rec.Name = analysis.Candidate.Name
	}
	m.saved = append(m.saved, rec)
	return nil
}

func (m *memoryStore) FindCandidatesByHash(_ context.Context, contentHash string) ([]db.CandidateRecord, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	return m.byHash[contentHash], nil
}

func (m *memoryStore) ListRuns(_ context.Context, _ int) ([]db.Run, error) {
	if m.run == nil {
		return nil, nil
	}
	return []db.Run{*m.run}, nil
}

func (m *memoryStore) GetRun(_ context.Context, _ uuid.UUID) (*db.Run, error) {
	return m.run, nil
}

func (m *memoryStore) ListCandidates(_ context.Context, _ uuid.UUID) ([]db.CandidateRecord, error) {
	return m.saved, nil
}

func testShortlist() *types.Shortlist {
	return &types.Shortlist{
		JobTitle: "Backend Engineer",
		Screened: 3,
		Candidates: []types.CandidateAnalysis{
			{Rank: 1, Source: "ann.txt", Candidate: &types.Candidate{Name: "Ann"}},
			{Rank: 2, Source: "ben.txt", Candidate: &types.Candidate{Name: "Ben"}},
		},
	}
}

func TestRunRecorder_Finish(t *testing.T) {
	store := &memoryStore{}
	ctx := context.Background()

	recorder, err := startRun(ctx, store, "Backend Engineer", "./resumes")
	require.NoError(t, err)

	err = recorder.finish(ctx, testShortlist(), map[string]string{"ann.txt": "hash-ann"})
	require.NoError(t, err)

	require.Len(t, store.saved, 2)
	assert.Equal(t, "hash-ann", store.saved[0].ContentHash)
	assert.Equal(t, "", store.saved[1].ContentHash)
	assert.Equal(t, store.runID, store.saved[1].RunID)
	assert.Equal(t, []completion{{status: db.RunStatusCompleted, screened: 3}}, store.completions)
}

func TestRunRecorder_SaveFailureMarksRunFailed(t *testing.T) {
	store := &memoryStore{saveErr: errors.New("connection reset")}
	ctx := context.Background()

	recorder, err := startRun(ctx, store, "Backend Engineer", "./resumes")
	require.NoError(t, err)

	err = recorder.finish(ctx, testShortlist(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, []completion{{status: db.RunStatusFailed}}, store.completions)
}

func TestRunRecorder_Fail(t *testing.T) {
	store := &memoryStore{}
	recorder, err := startRun(context.Background(), store, "Backend Engineer", "./resumes")
	require.NoError(t, err)

	recorder.fail()

	assert.Equal(t, []completion{{status: db.RunStatusFailed}}, store.completions)
	assert.Empty(t, store.saved)
}

func TestRunRecorder_NilIsNoop(t *testing.T) {
	var recorder *runRecorder

	assert.NotPanics(t, recorder.fail)
	assert.NoError(t, recorder.finish(context.Background(), testShortlist(), nil))
}

func TestStartRun_Error(t *testing.T) {
	store := &memoryStore{createErr: errors.New("relation does not exist")}

	recorder, err := startRun(context.Background(), store, "Backend Engineer", "./resumes")
	require.Error(t, err)
	assert.Nil(t, recorder)
}

func TestReportPreviouslyScreened(t *testing.T) {
	seenBefore := ingestion.NewMetadata("Ann Lee\nGo", "ann.txt", ingestion.FormatText)
	fresh := ingestion.NewMetadata("Ben Ray\nSQL", "ben.txt", ingestion.FormatText)
	store := &memoryStore{byHash: map[string][]db.CandidateRecord{
		seenBefore.Hash: {{RunID: uuid.New(), Rank: 2, Source: "ann.txt"}},
	}}
	docs := []*ingestion.Document{
		{Resume: types.RawResume{Name: "ann.txt"}, Metadata: seenBefore},
		{Resume: types.RawResume{Name: "ben.txt"}, Metadata: fresh},
		{Resume: types.RawResume{Name: "cat.txt"}},
	}

	assert.Equal(t, 1, reportPreviouslyScreened(context.Background(), store, docs))
}

func TestReportPreviouslyScreened_LookupError(t *testing.T) {
	store := &memoryStore{lookupErr: errors.New("timeout")}
	docs := []*ingestion.Document{
		{Resume: types.RawResume{Name: "ann.txt"}, Metadata: ingestion.NewMetadata("Ann", "ann.txt", ingestion.FormatText)},
	}

	assert.Equal(t, 0, reportPreviouslyScreened(context.Background(), store, docs))
}

func TestConnectDatabase_RequiresURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := connectDatabase(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadRunReport(t *testing.T) {
	store := &memoryStore{}
	ctx := context.Background()
	recorder, err := startRun(ctx, store, "Backend Engineer", "./resumes")
	require.NoError(t, err)
	require.NoError(t, recorder.finish(ctx, testShortlist(), nil))
	store.run = &db.Run{ID: store.runID, JobTitle: "Backend Engineer", Status: db.RunStatusCompleted, Screened: 3}

	report, err := loadRunReport(ctx, store, store.runID)
	require.NoError(t, err)

	assert.Equal(t, store.runID, report.Run.ID)
	require.Len(t, report.Candidates, 2)
	require.NotNil(t, report.Candidates[0].Candidate)
	assert.Equal(t, "Ann", report.Candidates[0].Candidate.Name)
	assert.Equal(t, 2, report.Candidates[1].Rank)
}

func TestLoadRunReport_NotFound(t *testing.T) {
	_, err := loadRunReport(context.Background(), &memoryStore{}, uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run not found")
}

func TestLoadRunReport_CorruptAnalysis(t *testing.T) {
	store := &memoryStore{
		run:   &db.Run{ID: uuid.New()},
		saved: []db.CandidateRecord{{Source: "ann.txt", Analysis: []byte("{")}},
	}

	_, err := loadRunReport(context.Background(), store, store.run.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ann.txt")
}

func TestListRuns_EmptyIsNotNil(t *testing.T) {
	runs, err := listRuns(context.Background(), &memoryStore{}, 10)
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)
}

func TestRunsShowCommand_InvalidID(t *testing.T) {
	_, err := execute(t, "runs", "show", "not-a-uuid", "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid run-id")
}

func TestRunsListCommand_RequiresDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := execute(t, "runs", "list", "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
