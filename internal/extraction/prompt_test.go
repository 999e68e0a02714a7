package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("Jane Smith\nGo developer")

	assert.Contains(t, prompt, "--- RESUME TEXT ---\nJane Smith\nGo developer")
	assert.Contains(t, prompt, "--- END RESUME TEXT ---")
	assert.Contains(t, prompt, "English, Spanish")
	assert.NotContains(t, prompt, "{{.")

	headers := []string{
		"**Name**", "**Email**", "**Phone**", "**Location**", "**LinkedIn**", "**GitHub**",
		"**Experience Years**", "**Education**", "**Experience**", "**Technical Skills**",
		"**Soft Skills**", "**Certifications**", "**Languages**", "**Projects**", "**Achievements**",
	}
	last := -1
	for _, h := range headers {
		idx := strings.Index(prompt, h+"\n")
		if assert.GreaterOrEqual(t, idx, 0, h) {
			assert.Greater(t, idx, last, "%s out of order", h)
			last = idx
		}
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	assert.Equal(t, BuildPrompt("same"), BuildPrompt("same"))
}

func TestBuildPrompt_ResumeIsNotTemplated(t *testing.T) {
	prompt := BuildPrompt("my skills: {{.LanguageList}}")
	assert.Contains(t, prompt, "my skills: {{.LanguageList}}")
}
