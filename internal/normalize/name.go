// Package normalize turns raw substrings from resumes and LLM replies into
// validated, canonical field values.
package normalize

import (
	"regexp"
	"strings"
)

// CandidateSentinel is returned by CleanName when no plausible human name remains.
const CandidateSentinel = "Candidate"

var (
	fileExtensionRe = regexp.MustCompile(`(?i)(\.pdf|\.docx?|\.txt)$`)
	resumeTokenRe   = regexp.MustCompile(`(?i)resume|cv`)
	digitsRe        = regexp.MustCompile(`\d+`)
	nameJunkRe      = regexp.MustCompile(`[^\w\s'-]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
	fillerWordRe    = regexp.MustCompile(`(?i)\b(final|updated|new|latest|version|v\d+)\b`)
	docWordRe       = regexp.MustCompile(`(?i)\b(doc|document)\b`)
	yearRe          = regexp.MustCompile(`\b\d{4}\b`)
	fileIndicatorRe = regexp.MustCompile(`(?i)\b(resume|cv|document|file)\b`)
)

// CleanName turns a raw name (often a resume file name) into a title-cased
// human name, or CandidateSentinel when the result does not look like one.
func CleanName(raw string) string {
	if raw == "" {
		return CandidateSentinel
	}

	cleaned := fileExtensionRe.ReplaceAllString(raw, "")
	cleaned = stripResumeTokens(cleaned)
	cleaned = strings.NewReplacer("_", " ", "-", " ").Replace(cleaned)
	cleaned = digitsRe.ReplaceAllString(cleaned, "")
	cleaned = nameJunkRe.ReplaceAllString(cleaned, "")
	// dropping digits and junk can splice a new token together ("res1ume")
	cleaned = stripResumeTokens(cleaned)
	cleaned = collapseSpaces(cleaned)

	cleaned = fillerWordRe.ReplaceAllString(cleaned, "")
	cleaned = docWordRe.ReplaceAllString(cleaned, "")
	cleaned = yearRe.ReplaceAllString(cleaned, "")
	cleaned = collapseSpaces(cleaned)

	words := strings.Fields(cleaned)
	for i, word := range words {
		words[i] = titleCase(word)
	}
	cleaned = strings.Join(words, " ")

	if len(words) < 1 || len(words) > 4 || len(cleaned) < 2 || len(cleaned) > 50 {
		return CandidateSentinel
	}
	if fileIndicatorRe.MatchString(cleaned) {
		return CandidateSentinel
	}

	return cleaned
}

// stripResumeTokens removes "resume" and "cv" until none is left, since one
// removal can join the surrounding letters into another ("rescvume").
func stripResumeTokens(s string) string {
	for {
		next := resumeTokenRe.ReplaceAllString(s, "")
		if next == s {
			return s
		}
		s = next
	}
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// titleCase upper-cases the first byte and lower-cases the rest.
// Only ASCII survives the junk filter, so byte slicing is safe.
func titleCase(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
