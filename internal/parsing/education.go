package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	yearsNotSpecified       = "Not specified"
	institutionNotSpecified = "Institution not specified"
	yearNotSpecified        = "Year not specified"

	minFallbackLength = 5
)

func degreeInstitution(match []string) types.EducationEntry {
	years := group(match, 3)
	if years == "" {
		years = yearsNotSpecified
	}
	if gpa := group(match, 4); gpa != "" {
		years += " (" + gpa + ")"
	}
	return types.EducationEntry{
		Degree:      group(match, 1),
		Institution: group(match, 2),
		Years:       years,
	}
}

func institutionDegree(match []string) types.EducationEntry {
	entry := degreeInstitution(match)
	entry.Degree, entry.Institution = entry.Institution, entry.Degree
	return entry
}

var educationPatterns = []entryPattern[types.EducationEntry]{
	// Degree, Institution (Years) GPA
	{regexp.MustCompile(`(?i)^-?\s*([^,]+),\s*([^(]+)\s*\(([^)]+)\)\s*([\d.]+|GPA:\s*[\d.]+|CGPA:\s*[\d.]+)`), degreeInstitution},
	// Degree, Institution (Years)
	{regexp.MustCompile(`^-?\s*([^,]+),\s*([^(]+)\s*\(([^)]+)\)`), degreeInstitution},
	// Institution: Degree (Years)
	{regexp.MustCompile(`^-?\s*([^:]+):\s*([^(]+)\s*\(([^)]+)\)`), institutionDegree},
	// Degree from Institution (Years)
	{regexp.MustCompile(`(?i)^-?\s*(.+?)\s+from\s+(.+?)\s*\(([^)]+)\)`), degreeInstitution},
	// Institution - Degree - Years
	{regexp.MustCompile(`^-?\s*([^-]+)\s*-\s*([^-]+)\s*-\s*(.+)`), degreeInstitution},
	// Degree | Institution | Years
	{regexp.MustCompile(`^-?\s*([^|]+)\s*\|\s*([^|]+)\s*\|\s*(.+)`), degreeInstitution},
	// Degree, Institution
	{regexp.MustCompile(`^-?\s*([^,]+),\s*(.+)`), degreeInstitution},
}

var degreeKeywords = []string{
	"bachelor", "master", "phd", "diploma", "certificate", "btech", "mtech", "mba",
	"bca", "mca", "bsc", "msc", "engineering", "science", "arts", "commerce",
}

var (
	leadingDashRe    = regexp.MustCompile(`^-\s*`)
	educationSplitRe = regexp.MustCompile(`[,()\-|]`)
	fourDigitYearRe  = regexp.MustCompile(`\d{4}`)
)

func parseEducation(lines []string, c *types.ParsedCandidate) {
	for _, line := range lines {
		if isEmptyOrNotProvided(line) {
			continue
		}

		entry, ok := firstMatch(line, educationPatterns)
		if !ok {
			if len(line) < minFallbackLength {
				continue
			}
			if entry, ok = educationByKeyword(line); !ok {
				continue
			}
		}

		c.Education = append(c.Education, entry)
		logger.Debug().Str("degree", entry.Degree).Str("institution", entry.Institution).Msg("added education entry")
	}
}

// educationByKeyword recovers an entry from a line that contains a degree keyword
// but fits none of the patterns.
func educationByKeyword(line string) (types.EducationEntry, bool) {
	clean := leadingDashRe.ReplaceAllString(line, "")
	lower := strings.ToLower(clean)

	keyword := ""
	for _, k := range degreeKeywords {
		if strings.Contains(lower, k) {
			keyword = k
			break
		}
	}
	if keyword == "" {
		return types.EducationEntry{}, false
	}

	parts := educationSplitRe.Split(clean, -1)
	entry := types.EducationEntry{
		Degree:      strings.TrimSpace(parts[0]),
		Institution: institutionNotSpecified,
		Years:       yearNotSpecified,
	}

	for _, p := range parts {
		if strings.Contains(strings.ToLower(p), keyword) {
			if d := strings.TrimSpace(p); d != "" {
				entry.Degree = d
			}
			break
		}
	}
	for _, p := range parts {
		if !strings.Contains(strings.ToLower(p), keyword) && len(p) > 3 {
			if inst := strings.TrimSpace(p); inst != "" {
				entry.Institution = inst
			}
			break
		}
	}
	for _, p := range parts {
		if fourDigitYearRe.MatchString(p) {
			entry.Years = strings.TrimSpace(p)
			break
		}
	}

	return entry, true
}
