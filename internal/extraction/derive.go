package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

var durationYearRe = regexp.MustCompile(`\b\d{4}\b`)

// CalculateExperienceYears sums the span of every dated entry and rounds to
// whole years. A duration with two years counts from the first to the second;
// a single year followed by "present" or "current" runs to currentYear. Entries
// without a year, or with an end before the start, contribute nothing.
func CalculateExperienceYears(entries []types.ExperienceEntry, currentYear int) int {
	totalMonths := 0
	for _, entry := range entries {
		duration := strings.ToLower(entry.Duration)
		years := durationYearRe.FindAllString(duration, -1)
		if len(years) == 0 {
			continue
		}

		start, _ := strconv.Atoi(years[0])
		end := start
		switch {
		case len(years) > 1:
			end, _ = strconv.Atoi(years[1])
		case strings.Contains(duration, "present") || strings.Contains(duration, "current"):
			end = currentYear
		}

		if end > start {
			totalMonths += (end - start) * 12
		}
	}

	return (totalMonths + 6) / 12
}

// EducationLevel classifies the first education entry. Without entries the
// level is types.NotProvided.
func EducationLevel(entries []types.EducationEntry) string {
	if len(entries) == 0 {
		return types.NotProvided
	}

	degree := strings.ToLower(entries[0].Degree)
	switch {
	case containsAny(degree, "phd", "doctor"):
		return types.EducationPhD
	case containsAny(degree, "master", "msc", "mba"):
		return types.EducationMasters
	case containsAny(degree, "bachelor", "bsc", "btech"):
		return types.EducationBachelor
	default:
		return types.EducationOther
	}
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
