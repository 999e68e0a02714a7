// Package parsing turns the LLM's semi-structured extraction reply into a
// ParsedCandidate. Parsing is best-effort: it never fails, and lines it
// cannot interpret are dropped.
package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/normalize"
	"github.com/jonathan/resume-screener/internal/types"
)

// Section keys, derived from header text by lower-casing and joining words with "_".
const (
	SectionName            = "name"
	SectionEmail           = "email"
	SectionPhone           = "phone"
	SectionLocation        = "location"
	SectionLinkedIn        = "linkedin"
	SectionGitHub          = "github"
	SectionExperienceYears = "experience_years"
	SectionEducation       = "education"
	SectionExperience      = "experience"
	SectionTechnicalSkills = "technical_skills"
	SectionSoftSkills      = "soft_skills"
	SectionCertifications  = "certifications"
	SectionLanguages       = "languages"
	SectionProjects        = "projects"
	SectionAchievements    = "achievements"
)

// scalarHandlers process scalar sections one line at a time
var scalarHandlers = map[string]func(content string, c *types.ParsedCandidate){
	SectionName:            func(s string, c *types.ParsedCandidate) { c.Name = ptr(normalize.CleanName(s)) },
	SectionEmail:           func(s string, c *types.ParsedCandidate) { c.Email = ptr(normalize.ValidateEmail(s)) },
	SectionPhone:           func(s string, c *types.ParsedCandidate) { c.Phone = ptr(cleanBasicField(s)) },
	SectionLocation:        func(s string, c *types.ParsedCandidate) { c.Location = ptr(cleanBasicField(s)) },
	SectionLinkedIn:        func(s string, c *types.ParsedCandidate) { c.LinkedIn = ptr(cleanBasicField(s)) },
	SectionGitHub:          func(s string, c *types.ParsedCandidate) { c.GitHub = ptr(cleanBasicField(s)) },
	SectionExperienceYears: func(s string, c *types.ParsedCandidate) { c.ExperienceYears = ptr(parseNumber(s)) },
}

// blockHandlers process list sections once, when the section is flushed
var blockHandlers = map[string]func(lines []string, c *types.ParsedCandidate){
	SectionEducation:       parseEducation,
	SectionExperience:      parseExperience,
	SectionTechnicalSkills: parseTechnicalSkills,
	SectionSoftSkills:      func(lines []string, c *types.ParsedCandidate) { c.SoftSkills = parseList(lines) },
	SectionCertifications:  func(lines []string, c *types.ParsedCandidate) { c.Certifications = parseList(lines) },
	SectionLanguages:       parseLanguages,
	SectionProjects:        parseProjects,
	SectionAchievements:    parseAchievements,
}

// sectionState is either noSection or inside a section identified by key.
// Unrecognized keys are valid states whose lines are dropped.
type sectionState struct {
	active bool
	key    string
}

var noSection = sectionState{}

func inSection(key string) sectionState {
	return sectionState{active: true, key: key}
}

// outputParser accumulates lines of the current list section until the next
// header or end of input, since entries may wrap across lines.
type outputParser struct {
	state       sectionState
	accumulator []string
	candidate   *types.ParsedCandidate
}

// ParseLLMOutput parses an extraction reply made of **Header** lines followed
// by section bodies. Missing, reordered, unknown or malformed sections are tolerated.
func ParseLLMOutput(text string) *types.ParsedCandidate {
	p := &outputParser{
		state:     noSection,
		candidate: newParsedCandidate(),
	}

	for _, line := range strings.Split(text, "\n") {
		p.consume(line)
	}
	p.flush()

	return p.candidate
}

func (p *outputParser) consume(line string) {
	content := strings.TrimSpace(line)
	if content == "" || strings.HasPrefix(content, "```") {
		return
	}

	if header, ok := sectionHeader(content); ok {
		p.flush()
		p.state = inSection(sectionKey(header))
		logger.Debug().Str("section", p.state.key).Msg("entering section")
		return
	}

	if !p.state.active {
		return
	}

	if handle, ok := scalarHandlers[p.state.key]; ok {
		handle(content, p.candidate)
		return
	}
	if _, ok := blockHandlers[p.state.key]; ok {
		p.accumulator = append(p.accumulator, content)
	}
}

// flush runs the block handler of the current section over the accumulated lines
func (p *outputParser) flush() {
	lines := p.accumulator
	p.accumulator = nil
	if len(lines) == 0 || !p.state.active {
		return
	}

	handle, ok := blockHandlers[p.state.key]
	if !ok {
		return
	}
	logger.Debug().Str("section", p.state.key).Int("lines", len(lines)).Msg("flushing section")
	handle(lines, p.candidate)
}

// sectionHeader reports whether a trimmed line is a **Header** line and returns its text
func sectionHeader(content string) (string, bool) {
	if len(content) < 4 || !strings.HasPrefix(content, "**") || !strings.HasSuffix(content, "**") {
		return "", false
	}
	return strings.TrimSpace(strings.ReplaceAll(content, "**", "")), true
}

var headerSpaceRe = regexp.MustCompile(`\s+`)

// sectionKey maps header text to a section key: "Technical Skills" -> "technical_skills".
// A trailing colon ("Education:") is ignored.
func sectionKey(header string) string {
	header = strings.TrimSpace(strings.TrimSuffix(header, ":"))
	return headerSpaceRe.ReplaceAllString(strings.ToLower(header), "_")
}

func newParsedCandidate() *types.ParsedCandidate {
	return &types.ParsedCandidate{
		Education:       []types.EducationEntry{},
		Experience:      []types.ExperienceEntry{},
		Skills:          []string{},
		TechnicalSkills: []string{},
		SoftSkills:      []string{},
		Certifications:  []string{},
		Languages:       []string{},
		Projects:        []types.ProjectEntry{},
		Achievements:    []string{},
	}
}

var emptyFieldValues = map[string]bool{
	"":              true,
	"not provided":  true,
	"not specified": true,
	"n/a":           true,
}

// cleanBasicField passes a scalar through, substituting types.NotProvided for boilerplate
func cleanBasicField(content string) string {
	cleaned := strings.TrimSpace(content)
	if emptyFieldValues[strings.ToLower(cleaned)] {
		return types.NotProvided
	}
	return cleaned
}

var firstNumberRe = regexp.MustCompile(`\d+`)

// parseNumber returns the first run of digits as an int, or 0
func parseNumber(content string) int {
	match := firstNumberRe.FindString(content)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return n
}

func ptr[T any](v T) *T {
	return &v
}
