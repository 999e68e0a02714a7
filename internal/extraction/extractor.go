// Package extraction turns raw resume text into a fully defaulted Candidate
// by prompting an LLM and parsing its reply.
package extraction

import (
	"context"
	"time"

	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/jonathan/resume-screener/internal/validation"
)

// Extractor runs one extraction cycle (prompt, LLM call, parse) per resume.
// It holds no per-resume state and resumes are processed one at a time.
type Extractor struct {
	client llm.Client
	tier   llm.ModelTier
	now    func() time.Time
}

// Option configures an Extractor
type Option func(*Extractor)

// WithClock sets the clock used to resolve "present" in durations
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// WithTier sets the model tier used for extraction calls
func WithTier(tier llm.ModelTier) Option {
	return func(e *Extractor) {
		e.tier = tier
	}
}

// NewExtractor creates an Extractor backed by client
func NewExtractor(client llm.Client, opts ...Option) *Extractor {
	e := &Extractor{
		client: client,
		tier:   llm.TierStandard,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractCandidate extracts a Candidate from one resume. The only error is a
// failed LLM call, returned as *APICallError; a malformed reply yields defaults.
func (e *Extractor) ExtractCandidate(ctx context.Context, resume types.RawResume) (*types.Candidate, error) {
	log := logger.Ctx(ctx).With().Str("resume", resume.Name).Logger()

	prompt := BuildPrompt(validation.SanitizeResume(resume.Name, resume.Content))
	log.Debug().Int("prompt_chars", len(prompt)).Msg("sending extraction prompt")

	reply, err := e.client.GenerateContent(ctx, prompt, e.tier)
	if err != nil {
		return nil, &APICallError{
			Resume: resume.Name,
			Model:  e.client.GetModel(e.tier),
			Cause:  err,
		}
	}
	log.Debug().Int("reply_chars", len(reply)).Msg("received extraction reply")

	parsed := parsing.ParseLLMOutput(llm.StripCodeFence(reply))

	// the figure derived from dated entries replaces the self-reported one
	years := CalculateExperienceYears(parsed.Experience, e.now().Year())
	parsed.ExperienceYears = &years

	candidate := types.NewCandidate(parsed)
	if len(candidate.Education) > 0 {
		candidate.EducationLevel = EducationLevel(candidate.Education)
	}

	log.Info().
		Str("name", candidate.Name).
		Int("experience_years", candidate.ExperienceYears).
		Int("technical_skills", len(candidate.TechnicalSkills)).
		Msg("candidate extracted")

	return candidate, nil
}
