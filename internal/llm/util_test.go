package llm

import (
	"testing"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "markdown code block",
			input:    "```markdown\n**Name**\nJane Smith\n```",
			expected: "**Name**\nJane Smith",
		},
		{
			name:     "generic code block",
			input:    "```\n**Name**\nJane Smith\n```",
			expected: "**Name**\nJane Smith",
		},
		{
			name:     "header on fence line",
			input:    "```**Name**\nJane Smith\n```",
			expected: "**Name**\nJane Smith",
		},
		{
			name:     "plain reply",
			input:    "  **Name**\nJane Smith  ",
			expected: "**Name**\nJane Smith",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripCodeFence(tt.input)
			if result != tt.expected {
				t.Errorf("StripCodeFence() = %q, want %q", result, tt.expected)
			}
		})
	}
}
