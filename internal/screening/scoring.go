package screening

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-screener/internal/normalize"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	baseScore = 70
	maxScore  = 95

	// minimum overall score for each recommendation / fit band
	bandExcellent    = 90
	bandGood         = 80
	bandFair         = 70
	bandBelowAverage = 60
)

// Analyze scores a candidate against a job description. Scoring is
// deterministic: the same candidate and job always yield the same analysis.
func Analyze(c *types.Candidate, job *types.JobDescription) types.CandidateAnalysis {
	matched, missing := matchRequiredSkills(c, job)

	scores := types.Scores{
		Technical:     min(baseScore+min(len(c.TechnicalSkills)*3, 25), maxScore),
		Experience:    experienceScore(c, job),
		Education:     educationScore(c),
		Communication: min(baseScore+languageBonus(c)+min(len(c.SoftSkills)*2, 10), maxScore),
		SkillMatch:    skillMatchScore(c, job, len(matched)),
	}
	scores.Overall = (scores.Technical*30 +
		scores.Experience*25 +
		scores.Education*15 +
		scores.Communication*10 +
		scores.SkillMatch*20 + 50) / 100

	return types.CandidateAnalysis{
		Candidate:      c,
		Scores:         scores,
		Strengths:      strengths(c, job, matched),
		RedFlags:       redFlags(c, job, missing),
		Recommendation: recommendation(scores.Overall),
		OverallFit:     overallFit(scores.Overall),
	}
}

func experienceScore(c *types.Candidate, job *types.JobDescription) int {
	score := min(baseScore+min(c.ExperienceYears*2, 20), maxScore)
	if job.MinExperienceYears > 0 && c.ExperienceYears < job.MinExperienceYears {
		score -= 10
	}
	return score
}

func educationScore(c *types.Candidate) int {
	if len(c.Education) == 0 {
		return baseScore
	}
	switch c.EducationLevel {
	case types.EducationPhD, types.EducationMasters:
		return min(baseScore+20, maxScore)
	default:
		return baseScore + 15
	}
}

func languageBonus(c *types.Candidate) int {
	if len(c.Languages) > 1 {
		return 5
	}
	return 0
}

// skillMatchScore scales from 50 (no required skill found) to 95 (all found).
// Without required skills it follows the technical breadth score.
func skillMatchScore(c *types.Candidate, job *types.JobDescription, matched int) int {
	if len(job.RequiredSkills) == 0 {
		return min(baseScore+min(len(c.TechnicalSkills)*3, 25), maxScore)
	}
	return 50 + (maxScore-50)*matched/len(job.RequiredSkills)
}

// matchRequiredSkills splits the job's required skills into those the
// candidate lists (technical or general skills) and those missing
func matchRequiredSkills(c *types.Candidate, job *types.JobDescription) (matched, missing []string) {
	have := normalize.SkillSet(append(append([]string{}, c.TechnicalSkills...), c.Skills...))
	for _, req := range job.RequiredSkills {
		if have[strings.ToLower(normalize.NormalizeSkillName(req))] {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}
	return matched, missing
}

func strengths(c *types.Candidate, job *types.JobDescription, matched []string) []string {
	s := []string{}
	if len(c.TechnicalSkills) > 3 {
		s = append(s, "Strong technical skill set")
	}
	if c.ExperienceYears > 3 {
		s = append(s, "Experienced professional")
	}
	if len(c.Education) > 0 {
		s = append(s, "Solid educational background")
	}
	if len(c.Languages) > 1 {
		s = append(s, "Multilingual capabilities")
	}
	if len(c.Certifications) > 0 {
		s = append(s, "Professional certifications")
	}
	if len(job.RequiredSkills) > 0 && len(matched) == len(job.RequiredSkills) {
		s = append(s, "Covers all required skills")
	}
	return s
}

func redFlags(c *types.Candidate, job *types.JobDescription, missing []string) []string {
	f := []string{}
	if len(c.TechnicalSkills) < 2 {
		f = append(f, "Limited technical skills listed")
	}
	if c.ExperienceYears == 0 {
		f = append(f, "No clear work experience mentioned")
	} else if job.MinExperienceYears > 0 && c.ExperienceYears < job.MinExperienceYears {
		f = append(f, fmt.Sprintf("Below required experience (%d of %d years)", c.ExperienceYears, job.MinExperienceYears))
	}
	if c.Email == types.NotProvided || c.Email == fallbackEmail {
		f = append(f, "Contact information incomplete")
	}
	if len(c.Education) == 0 {
		f = append(f, "Education background unclear")
	}
	if len(missing) > 0 {
		f = append(f, "Missing required skills: "+strings.Join(missing, ", "))
	}
	return f
}

func recommendation(overall int) string {
	switch {
	case overall >= 85:
		return "Highly recommended candidate - proceed to final interview"
	case overall >= 75:
		return "Good candidate - schedule technical interview"
	case overall >= 65:
		return "Potential candidate - additional screening recommended"
	default:
		return "Below threshold - consider for entry-level roles only"
	}
}

func overallFit(overall int) string {
	switch {
	case overall >= bandExcellent:
		return "Excellent"
	case overall >= bandGood:
		return "Good"
	case overall >= bandFair:
		return "Fair"
	case overall >= bandBelowAverage:
		return "Below Average"
	default:
		return "Poor"
	}
}
