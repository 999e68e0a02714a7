package normalize

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// languageCatalog is the fixed list of languages searched for, in match order.
var languageCatalog = []string{
	"English", "Spanish", "French", "German", "Italian", "Portuguese", "Russian", "Chinese",
	"Mandarin", "Cantonese", "Japanese", "Korean", "Arabic", "Hindi", "Bengali", "Urdu",
	"Telugu", "Tamil", "Marathi", "Gujarati", "Punjabi", "Thai", "Vietnamese", "Indonesian",
	"Malay", "Tagalog", "Dutch", "Swedish", "Norwegian", "Danish", "Finnish", "Polish",
	"Czech", "Hungarian", "Romanian", "Bulgarian", "Croatian", "Serbian", "Greek", "Turkish",
	"Hebrew", "Persian", "Farsi", "Swahili", "Amharic", "Yoruba", "Igbo", "Hausa", "Zulu",
	"Afrikaans", "Sinhala", "Nepali", "Burmese", "Khmer", "Lao", "Mongolian", "Kazakh",
	"Uzbek", "Kyrgyz", "Tajik", "Georgian", "Armenian", "Azerbaijani", "Estonian", "Latvian",
	"Lithuanian", "Slovenian", "Slovak", "Maltese", "Irish", "Welsh", "Scottish Gaelic",
	"Basque", "Catalan", "Galician", "Albanian", "Macedonian", "Bosnian", "Montenegrin",
	"Icelandic", "Luxembourgish", "Romansh",
}

// proficiencyLevels are the descriptors recognised next to a language name.
var proficiencyLevels = []string{
	"Native", "Fluent", "Advanced", "Intermediate", "Basic", "Beginner", "Conversational",
	"Professional", "Business", "A1", "A2", "B1", "B2", "C1", "C2",
}

// languageStopWords disqualify a fallback token when contained in it.
var languageStopWords = []string{"not", "provided", "languages", "language", "skills", "known", "speak", "spoken"}

var (
	languageRes = compileLanguageRes(languageCatalog)

	// canonicalLevels maps a lower-cased descriptor to its catalog spelling.
	canonicalLevels = func() map[string]string {
		m := make(map[string]string, len(proficiencyLevels))
		for _, level := range proficiencyLevels {
			m[strings.ToLower(level)] = level
		}
		return m
	}()

	levelAlternation = strings.Join(quoteAll(proficiencyLevels), "|")

	// levelBeforeRe matches a descriptor ending the text that precedes a language,
	// e.g. "Fluent in ", "basic ", "Native: ".
	levelBeforeRe = regexp.MustCompile(`(?i)\b(` + levelAlternation + `)\b(?:\s+(?:in|at))?\s*[:\-–]?\s*$`)

	// levelAfterRe matches a descriptor starting the text that follows a language,
	// e.g. " (Fluent)", " - Native", ": C1".
	levelAfterRe = regexp.MustCompile(`(?i)^\s*[(\[:\-–]?\s*(` + levelAlternation + `)\b`)

	languageSplitRe = regexp.MustCompile(`[,;|&\n\-•]`)
	properNameRe    = regexp.MustCompile(`^[A-Z][a-z]+(\s[A-Z][a-z]+)?$`)
)

// LanguagesList returns the language catalog joined with ", " for use in prompts.
func LanguagesList() string {
	return strings.Join(languageCatalog, ", ")
}

// ParseLanguages extracts languages, annotated with an adjacent proficiency
// level when one is present, from free text.
func ParseLanguages(text string) []string {
	languages := []string{}
	if strings.TrimSpace(text) == "" || text == types.NotProvided {
		return languages
	}

	for i, language := range languageCatalog {
		matches := languageRes[i].FindAllStringIndex(text, -1)
		if matches == nil {
			continue
		}
		if containsLanguage(languages, language) {
			continue
		}

		entry := language
		if level := adjacentLevel(text, matches); level != "" {
			entry = language + " (" + level + ")"
		}
		languages = append(languages, entry)
	}

	if len(languages) > 0 {
		return languages
	}

	return parseLanguagesLoose(text)
}

// adjacentLevel returns the first proficiency descriptor found directly after
// or directly before any occurrence of the language.
func adjacentLevel(text string, matches [][]int) string {
	for _, loc := range matches {
		if m := levelAfterRe.FindStringSubmatch(text[loc[1]:]); m != nil {
			return canonicalLevels[strings.ToLower(m[1])]
		}
		if m := levelBeforeRe.FindStringSubmatch(text[:loc[0]]); m != nil {
			return canonicalLevels[strings.ToLower(m[1])]
		}
	}
	return ""
}

// parseLanguagesLoose keeps separator-delimited tokens shaped like proper names.
func parseLanguagesLoose(text string) []string {
	languages := []string{}
	for _, part := range languageSplitRe.Split(text, -1) {
		token := strings.TrimSpace(part)
		if len(token) < 3 {
			continue
		}
		if containsStopWord(strings.ToLower(token)) {
			continue
		}
		if properNameRe.MatchString(token) && len(token) <= 20 {
			languages = append(languages, token)
		}
	}
	return languages
}

func containsLanguage(languages []string, language string) bool {
	needle := strings.ToLower(language)
	for _, existing := range languages {
		if strings.Contains(strings.ToLower(existing), needle) {
			return true
		}
	}
	return false
}

func containsStopWord(lower string) bool {
	for _, word := range languageStopWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func compileLanguageRes(catalog []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(catalog))
	for i, language := range catalog {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(language) + `\b`)
	}
	return res
}

func quoteAll(values []string) []string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = regexp.QuoteMeta(v)
	}
	return quoted
}
