package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/normalize"
	"github.com/jonathan/resume-screener/internal/types"
)

var listSplitRe = regexp.MustCompile(`[,;|&\n]`)

// parseList joins the section lines and splits them into tokens, dropping empty
// and placeholder tokens. A bulleted line starts a new token; an unbulleted line
// continues the previous one with a space.
func parseList(lines []string) []string {
	var sb strings.Builder
	for i, line := range lines {
		bulleted := hasBullet(line)
		if bulleted {
			line = stripBullet(line)
		}
		if i > 0 {
			if bulleted {
				sb.WriteString(",")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(line)
	}

	items := []string{}
	for _, token := range listSplitRe.Split(sb.String(), -1) {
		token = strings.TrimSpace(token)
		lower := strings.ToLower(token)
		if isEmptyOrNotProvided(token) ||
			strings.Contains(lower, "not provided") ||
			strings.Contains(lower, "not specified") {
			continue
		}
		items = append(items, token)
	}
	return items
}

func parseTechnicalSkills(lines []string, c *types.ParsedCandidate) {
	c.TechnicalSkills = parseList(lines)
	c.Skills = append(c.Skills, c.TechnicalSkills...)
	logger.Debug().Int("count", len(c.TechnicalSkills)).Msg("parsed technical skills")
}

func parseLanguages(lines []string, c *types.ParsedCandidate) {
	c.Languages = normalize.ParseLanguages(strings.Join(lines, " "))
}

func parseAchievements(lines []string, c *types.ParsedCandidate) {
	for _, line := range lines {
		if isEmptyOrNotProvided(line) {
			continue
		}
		if achievement := stripBullet(line); achievement != "" {
			c.Achievements = append(c.Achievements, achievement)
		}
	}
}
