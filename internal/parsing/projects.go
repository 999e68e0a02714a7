package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/types"
)

func project(match []string) types.ProjectEntry {
	return types.ProjectEntry{
		Name:         group(match, 1),
		Description:  group(match, 2),
		Technologies: splitTechnologies(group(match, 3)),
	}
}

var projectPatterns = []entryPattern[types.ProjectEntry]{
	// Name: Description (Technologies)
	{regexp.MustCompile(`^-?\s*(.*?):\s*(.*?)\s*\(([^)]+)\)`), project},
	// Name - Description (Technologies)
	{regexp.MustCompile(`^-?\s*(.*?)\s*-\s*(.*?)\s*\(([^)]+)\)`), project},
	// Name: Description
	{regexp.MustCompile(`^-?\s*(.*?):\s*(.*)`), project},
}

func splitTechnologies(s string) []string {
	techs := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			techs = append(techs, t)
		}
	}
	return techs
}

func parseProjects(lines []string, c *types.ParsedCandidate) {
	for _, line := range lines {
		if isEmptyOrNotProvided(line) {
			continue
		}

		entry, ok := firstMatch(line, projectPatterns)
		if !ok {
			if !hasBullet(line) {
				continue
			}
			entry = bulletProject(stripBullet(line))
		}

		c.Projects = append(c.Projects, entry)
		logger.Debug().Str("project", entry.Name).Msg("added project entry")
	}
}

// bulletProject splits a bullet line on its first colon into name and description.
// Without a colon the whole line is used for both.
func bulletProject(content string) types.ProjectEntry {
	entry := types.ProjectEntry{Name: content, Description: content, Technologies: []string{}}
	if name, desc, found := strings.Cut(content, ":"); found {
		if name = strings.TrimSpace(name); name != "" {
			entry.Name = name
		}
		if desc = strings.TrimSpace(desc); desc != "" {
			entry.Description = desc
		}
	}
	return entry
}
