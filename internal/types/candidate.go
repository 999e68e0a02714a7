// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// NotProvided is the sentinel used for any string field that could not be extracted.
const NotProvided = "Not provided"

// Education levels derived from the first education entry.
const (
	EducationPhD      = "PhD"
	EducationMasters  = "Masters"
	EducationBachelor = "Bachelor"
	EducationOther    = "Other"
)

// RawResume is a resume as supplied by the caller: the original file name and its text body.
type RawResume struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// EducationEntry represents one degree. Years may carry a parenthetical GPA/CGPA annotation.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Years       string `json:"years"`
}

// ExperienceEntry represents one position. Description grows as continuation lines are parsed.
type ExperienceEntry struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// ProjectEntry represents one project
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// ParsedCandidate is the partial record produced from an LLM reply.
// A nil pointer or nil slice means the field was not found.
type ParsedCandidate struct {
	Name            *string
	Email           *string
	Phone           *string
	Location        *string
	LinkedIn        *string
	GitHub          *string
	ExperienceYears *int
	Education       []EducationEntry
	Experience      []ExperienceEntry
	Skills          []string
	TechnicalSkills []string
	SoftSkills      []string
	Certifications  []string
	Languages       []string
	Projects        []ProjectEntry
	Achievements    []string
}

// Candidate is the fully defaulted candidate record. No field is ever absent.
type Candidate struct {
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	Location        string            `json:"location"`
	LinkedIn        string            `json:"linkedin"`
	GitHub          string            `json:"github"`
	ExperienceYears int               `json:"experience_years"`
	Education       []EducationEntry  `json:"education"`
	EducationLevel  string            `json:"education_level"`
	Experience      []ExperienceEntry `json:"experience"`
	Skills          []string          `json:"skills"`
	TechnicalSkills []string          `json:"technical_skills"`
	SoftSkills      []string          `json:"soft_skills"`
	Certifications  []string          `json:"certifications"`
	Languages       []string          `json:"languages"`
	Projects        []ProjectEntry    `json:"projects"`
	Achievements    []string          `json:"achievements"`
	Summary         string            `json:"summary"`
	Keywords        []string          `json:"keywords"`
}

// DefaultCandidate returns a Candidate with every field at its default value.
func DefaultCandidate() *Candidate {
	return &Candidate{
		Name:            NotProvided,
		Email:           NotProvided,
		Phone:           NotProvided,
		Location:        NotProvided,
		LinkedIn:        NotProvided,
		GitHub:          NotProvided,
		Education:       []EducationEntry{},
		EducationLevel:  NotProvided,
		Experience:      []ExperienceEntry{},
		Skills:          []string{},
		TechnicalSkills: []string{},
		SoftSkills:      []string{},
		Certifications:  []string{},
		Languages:       []string{},
		Projects:        []ProjectEntry{},
		Achievements:    []string{},
		Keywords:        []string{},
	}
}

// NewCandidate builds a Candidate from the defaults, overriding each field the
// parsed record has present. A non-nil empty slice is a valid override.
func NewCandidate(parsed *ParsedCandidate) *Candidate {
	c := DefaultCandidate()
	if parsed == nil {
		return c
	}

	overrideString(&c.Name, parsed.Name)
	overrideString(&c.Email, parsed.Email)
	overrideString(&c.Phone, parsed.Phone)
	overrideString(&c.Location, parsed.Location)
	overrideString(&c.LinkedIn, parsed.LinkedIn)
	overrideString(&c.GitHub, parsed.GitHub)
	if parsed.ExperienceYears != nil {
		c.ExperienceYears = *parsed.ExperienceYears
	}

	if parsed.Education != nil {
		c.Education = parsed.Education
	}
	if parsed.Experience != nil {
		c.Experience = parsed.Experience
	}
	if parsed.Skills != nil {
		c.Skills = parsed.Skills
	}
	if parsed.TechnicalSkills != nil {
		c.TechnicalSkills = parsed.TechnicalSkills
	}
	if parsed.SoftSkills != nil {
		c.SoftSkills = parsed.SoftSkills
	}
	if parsed.Certifications != nil {
		c.Certifications = parsed.Certifications
	}
	if parsed.Languages != nil {
		c.Languages = parsed.Languages
	}
	if parsed.Projects != nil {
		c.Projects = parsed.Projects
	}
	if parsed.Achievements != nil {
		c.Achievements = parsed.Achievements
	}

	return c
}

func overrideString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
