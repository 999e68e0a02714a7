package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Golang to Go", "Golang", "Go"},
		{"JS to JavaScript", "JS", "JavaScript"},
		{"k8s to Kubernetes", "k8s", "Kubernetes"},
		{"postgres to PostgreSQL", "postgres", "PostgreSQL"},
		{"python to Python", "python", "Python"},
		{"PYTHON to Python", "PYTHON", "Python"},
		{"mixed case kept", "FastAPI", "FastAPI"},
		{"multi word kept", "distributed systems", "distributed systems"},
		{"whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSkillName(tt.input))
		})
	}
}

func TestSkillSet(t *testing.T) {
	set := SkillSet([]string{"Golang", "go", " ", "React.js"})

	assert.Equal(t, map[string]bool{"go": true, "react": true}, set)
}
