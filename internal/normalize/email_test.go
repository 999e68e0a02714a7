package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"valid trimmed", "  John.Doe@Example.com ", "John.Doe@Example.com"},
		{"valid plus tag", "jane+jobs@mail.co.uk", "jane+jobs@mail.co.uk"},
		{"not an email", "not-an-email", "Not provided"},
		{"empty", "", "Not provided"},
		{"sentinel", "Not provided", "Not provided"},
		{"missing local part", "@gmail.com", "Not provided"},
		{"missing domain", "john.doe@", "Not provided"},
		{"short tld", "john@example.c", "Not provided"},
		{"embedded in sentence", "Email: jane@example.com", "Not provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateEmail(tt.input))
		})
	}
}
