package extraction

import (
	"github.com/jonathan/resume-screener/internal/normalize"
	"github.com/jonathan/resume-screener/internal/prompts"
)

const (
	promptFile = "extraction.json"
	promptKey  = "extract-candidate"
)

// BuildPrompt renders the extraction prompt for one resume. The reply grammar
// it asks for is the one parsing.ParseLLMOutput reads.
func BuildPrompt(resumeText string) string {
	template := prompts.MustGet(promptFile, promptKey)
	return prompts.Format(template, map[string]string{
		"LanguageList": normalize.LanguagesList(),
		"ResumeText":   resumeText,
	})
}
