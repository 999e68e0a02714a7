package types

import "github.com/go-playground/validator/v10"

// DefaultTopN is the shortlist size used when a job description does not set one.
const DefaultTopN = 3

// JobDescription describes the position candidates are screened against.
type JobDescription struct {
	Title              string   `json:"title" yaml:"title" validate:"required,min=1"`
	Description        string   `json:"description,omitempty" yaml:"description"`
	RequiredSkills     []string `json:"required_skills,omitempty" yaml:"required_skills" validate:"dive,required"`
	MinExperienceYears int      `json:"min_experience_years,omitempty" yaml:"min_experience_years" validate:"gte=0"`
	TopNCandidates     int      `json:"top_n_candidates,omitempty" yaml:"top_n_candidates" validate:"gte=0"`
}

// Validate validates the JobDescription using the validator.
func (j *JobDescription) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

// TopN returns the shortlist size, falling back to DefaultTopN when unset.
func (j *JobDescription) TopN() int {
	if j.TopNCandidates <= 0 {
		return DefaultTopN
	}
	return j.TopNCandidates
}
