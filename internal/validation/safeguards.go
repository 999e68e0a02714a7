// Package validation screens untrusted resume text before it is placed in an LLM prompt.
package validation

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/logger"
)

// redacted replaces every stripped injection phrase
const redacted = "[REDACTED]"

// InjectionCheckResult holds the result of a basic injection heuristic check.
type InjectionCheckResult struct {
	IsSafe           bool     // Whether the content passed the basic heuristic check
	DetectedKeywords []string // Any suspicious phrases found
	Reason           string   // Human-readable explanation
}

// InjectionKeywords are phrases that rarely occur in a resume but often in an
// attempt to steer the extraction model. Single words such as "ignore" are left
// out because they show up in ordinary job descriptions.
var InjectionKeywords = []string{
	"system prompt",
	"new instructions",
	"ignore previous",
	"ignore all",
	"ignore the above",
	"forget everything",
	"disregard above",
	"disregard previous",
	"rank this candidate",
	"strong hire",
}

// CheckBasicHeuristics performs a basic keyword-based check for obvious injection attempts.
// It is a fallback heuristic, not a complete defence; the prompt's resume delimiters are the primary one.
func CheckBasicHeuristics(text string) *InjectionCheckResult {
	lowerText := strings.ToLower(text)
	var detectedKeywords []string

	for _, keyword := range InjectionKeywords {
		if strings.Contains(lowerText, keyword) {
			detectedKeywords = append(detectedKeywords, keyword)
		}
	}

	if len(detectedKeywords) > 0 {
		return &InjectionCheckResult{
			IsSafe:           false,
			DetectedKeywords: detectedKeywords,
			Reason:           "detected potential injection keywords: " + strings.Join(detectedKeywords, ", "),
		}
	}

	return &InjectionCheckResult{IsSafe: true}
}

// commonInjectionPatterns are regex patterns for obvious injection attempts.
var commonInjectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore\s+(all\s+)?(previous|prior|above)\s+instructions?`),
	regexp.MustCompile(`(?i)disregard\s+(all\s+)?(previous|prior|above)(\s+instructions?)?`),
	regexp.MustCompile(`(?i)forget\s+(all\s+)?(previous|prior|everything)`),
	regexp.MustCompile(`(?i)new\s+instructions?:`),
	regexp.MustCompile(`(?i)---\s*end\s+resume\s+text\s*---`),
}

// StripInjectionAttempts replaces common injection patterns with a marker.
// A fake end-of-resume delimiter is among them so the text cannot close its own block.
func StripInjectionAttempts(text string) string {
	result := text
	for _, pattern := range commonInjectionPatterns {
		result = pattern.ReplaceAllString(result, redacted)
	}
	return result
}

// SanitizeResume logs a warning when text looks like an injection attempt and
// returns it with the known patterns stripped. Processing is never blocked.
func SanitizeResume(source, text string) string {
	if result := CheckBasicHeuristics(text); !result.IsSafe {
		logger.Warn().
			Str("resume", source).
			Strs("keywords", result.DetectedKeywords).
			Msg("potential prompt injection in resume")
	}
	return StripInjectionAttempts(text)
}
