package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/types"
)

func strongCandidate() *types.Candidate {
	c := types.DefaultCandidate()
	c.Name = "Jane Smith"
	c.Email = "jane@example.com"
	c.TechnicalSkills = []string{"Go", "Kubernetes", "PostgreSQL", "Docker", "AWS"}
	c.Skills = c.TechnicalSkills
	c.SoftSkills = []string{"Leadership", "Mentoring"}
	c.ExperienceYears = 8
	c.Education = []types.EducationEntry{{Degree: "MSc Computer Science", Institution: "ETH Zurich", Years: "2014-2016"}}
	c.EducationLevel = types.EducationMasters
	c.Languages = []string{"English (Native)", "German (Fluent)"}
	return c
}

func TestAnalyze_DefaultCandidate(t *testing.T) {
	a := Analyze(types.DefaultCandidate(), &types.JobDescription{Title: "Engineer"})

	assert.Equal(t, types.Scores{
		Technical: 70, Experience: 70, Education: 70, Communication: 70, SkillMatch: 70, Overall: 70,
	}, a.Scores)
	assert.Equal(t, "Fair", a.OverallFit)
	assert.Equal(t, "Potential candidate - additional screening recommended", a.Recommendation)
	assert.Empty(t, a.Strengths)
	assert.Equal(t, []string{
		"Limited technical skills listed",
		"No clear work experience mentioned",
		"Contact information incomplete",
		"Education background unclear",
	}, a.RedFlags)
}

func TestAnalyze_StrongCandidate(t *testing.T) {
	job := &types.JobDescription{Title: "Platform Engineer", RequiredSkills: []string{"golang", "k8s"}, MinExperienceYears: 5}

	a := Analyze(strongCandidate(), job)

	assert.Equal(t, types.Scores{
		Technical: 85, Experience: 86, Education: 90, Communication: 79, SkillMatch: 95, Overall: 87,
	}, a.Scores)
	assert.Equal(t, "Good", a.OverallFit)
	assert.Equal(t, "Highly recommended candidate - proceed to final interview", a.Recommendation)
	assert.Equal(t, []string{
		"Strong technical skill set",
		"Experienced professional",
		"Solid educational background",
		"Multilingual capabilities",
		"Covers all required skills",
	}, a.Strengths)
	assert.Empty(t, a.RedFlags)
}

func TestAnalyze_MissingSkillsAndExperience(t *testing.T) {
	c := strongCandidate()
	c.TechnicalSkills = []string{"Go"}
	c.Skills = []string{"Go"}
	c.ExperienceYears = 2
	job := &types.JobDescription{Title: "Engineer", RequiredSkills: []string{"Go", "Rust"}, MinExperienceYears: 5}

	a := Analyze(c, job)

	assert.Equal(t, 72, a.Scores.SkillMatch)
	assert.Equal(t, 64, a.Scores.Experience)
	assert.Contains(t, a.RedFlags, "Below required experience (2 of 5 years)")
	assert.Contains(t, a.RedFlags, "Missing required skills: Rust")
	assert.NotContains(t, a.Strengths, "Covers all required skills")
}

func TestAnalyze_Deterministic(t *testing.T) {
	job := &types.JobDescription{Title: "Engineer", RequiredSkills: []string{"Go"}}
	assert.Equal(t, Analyze(strongCandidate(), job), Analyze(strongCandidate(), job))
}

func TestOverallFitBands(t *testing.T) {
	tests := []struct {
		overall int
		want    string
	}{
		{95, "Excellent"},
		{90, "Excellent"},
		{85, "Good"},
		{70, "Fair"},
		{60, "Below Average"},
		{59, "Poor"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, overallFit(tt.overall), tt.overall)
	}
}
