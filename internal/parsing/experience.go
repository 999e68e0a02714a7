package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/types"
)

func roleCompany(match []string) types.ExperienceEntry {
	return types.ExperienceEntry{
		Role:     group(match, 1),
		Company:  group(match, 2),
		Duration: group(match, 3),
	}
}

func companyRole(match []string) types.ExperienceEntry {
	entry := roleCompany(match)
	entry.Role, entry.Company = entry.Company, entry.Role
	return entry
}

var experiencePatterns = []entryPattern[types.ExperienceEntry]{
	// Title at Company (Duration)
	{regexp.MustCompile(`^-?\s*(.*?)\s+at\s+(.*?)\s*\(([^)]+)\)`), roleCompany},
	// Company: Title (Duration)
	{regexp.MustCompile(`^-?\s*(.*?):\s*(.*?)\s*\(([^)]+)\)`), companyRole},
	// Title | Company | Duration
	{regexp.MustCompile(`^-?\s*(.*?)\s*\|\s*(.*?)\s*\|\s*(.*)`), roleCompany},
	// Company - Title - Duration
	{regexp.MustCompile(`^-?\s*(.*?)\s*-\s*(.*?)\s*-\s*(.*)`), roleCompany},
}

// parseExperience adds one entry per matching line. An unmatched line that does
// not start with "-" continues the description of the previous entry; an
// unmatched dash line is dropped.
func parseExperience(lines []string, c *types.ParsedCandidate) {
	for _, line := range lines {
		if isEmptyOrNotProvided(line) {
			continue
		}

		if entry, ok := firstMatch(line, experiencePatterns); ok {
			c.Experience = append(c.Experience, entry)
			logger.Debug().Str("role", entry.Role).Str("company", entry.Company).Msg("added experience entry")
			continue
		}

		if strings.HasPrefix(line, "-") || len(c.Experience) == 0 {
			continue
		}
		last := &c.Experience[len(c.Experience)-1]
		last.Description = strings.TrimSpace(last.Description + " " + line)
	}
}
