package parsing

import (
	"regexp"
	"strings"
)

// entryPattern is one line shape of a list section. Tables of patterns are
// tried in order and the first match wins.
type entryPattern[T any] struct {
	re      *regexp.Regexp
	extract func(match []string) T
}

// firstMatch runs line through patterns in order
func firstMatch[T any](line string, patterns []entryPattern[T]) (T, bool) {
	for _, p := range patterns {
		if match := p.re.FindStringSubmatch(line); match != nil {
			return p.extract(match), true
		}
	}
	var zero T
	return zero, false
}

var skippedLines = map[string]bool{
	"":              true,
	"not provided":  true,
	"not specified": true,
	"n/a":           true,
	"none":          true,
	"none listed":   true,
}

// isEmptyOrNotProvided reports whether a list line carries no information
func isEmptyOrNotProvided(line string) bool {
	return skippedLines[strings.ToLower(strings.TrimSpace(line))]
}

var bulletRe = regexp.MustCompile(`^[-•]\s*`)

func stripBullet(line string) string {
	return strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))
}

func hasBullet(line string) bool {
	return strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•")
}

// group returns the trimmed submatch i, or "" when the group did not participate
func group(match []string, i int) string {
	if i >= len(match) {
		return ""
	}
	return strings.TrimSpace(match[i])
}
