// Package screening runs candidate extraction over a batch of resumes and
// ranks the results against a job description.
package screening

import (
	"context"
	"fmt"
	"sort"

	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/normalize"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	fallbackEmail   = "Error parsing resume"
	fallbackSummary = "Resume parsing failed"
)

// CandidateExtractor extracts one candidate from one resume
type CandidateExtractor interface {
	ExtractCandidate(ctx context.Context, resume types.RawResume) (*types.Candidate, error)
}

// Screener processes resumes strictly one at a time
type Screener struct {
	extractor CandidateExtractor
}

// NewScreener creates a Screener
func NewScreener(extractor CandidateExtractor) *Screener {
	return &Screener{extractor: extractor}
}

// Screen extracts and scores every resume, then returns the top candidates by
// overall score. A resume whose extraction fails is scored as a fallback
// candidate and screening continues. Only an invalid job description or a
// cancelled context stops the run.
func (s *Screener) Screen(ctx context.Context, resumes []types.RawResume, job *types.JobDescription) (*types.Shortlist, error) {
	if job == nil {
		return nil, fmt.Errorf("job description is required")
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job description: %w", err)
	}

	analyses := make([]types.CandidateAnalysis, 0, len(resumes))
	for i, resume := range resumes {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("screening stopped after %d of %d resumes: %w", i, len(resumes), err)
		}

		log := logger.Ctx(ctx).With().Str("resume", resume.Name).Int("index", i+1).Logger()
		log.Info().Msg("screening resume")

		candidate, err := s.extractor.ExtractCandidate(ctx, resume)
		parseError := ""
		if err != nil {
			log.Warn().Err(err).Msg("extraction failed, using fallback candidate")
			candidate = FallbackCandidate(resume)
			parseError = err.Error()
		}

		analysis := Analyze(candidate, job)
		analysis.Source = resume.Name
		analysis.ParseError = parseError
		analyses = append(analyses, analysis)
	}

	return &types.Shortlist{
		JobTitle:   job.Title,
		Screened:   len(resumes),
		Candidates: Rank(analyses, job.TopN()),
	}, nil
}

// Rank orders analyses by overall score, highest first and stable for ties,
// assigns ranks from 1 and keeps the first topN.
func Rank(analyses []types.CandidateAnalysis, topN int) []types.CandidateAnalysis {
	sorted := append([]types.CandidateAnalysis{}, analyses...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Scores.Overall > sorted[j].Scores.Overall
	})

	for i := range sorted {
		sorted[i].Rank = i + 1
	}
	if topN >= 0 && len(sorted) > topN {
		sorted = sorted[:topN]
	}
	return sorted
}

// FallbackCandidate stands in for a resume whose extraction failed. The name
// comes from the file name.
func FallbackCandidate(resume types.RawResume) *types.Candidate {
	c := types.DefaultCandidate()
	c.Name = normalize.CleanName(resume.Name)
	c.Email = fallbackEmail
	c.Summary = fallbackSummary
	return c
}
