package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name", "Jane Smith", "Jane Smith"},
		{"lower case", "jane smith", "Jane Smith"},
		{"upper case", "JANE SMITH", "Jane Smith"},
		{"pdf file name", "John_Doe_Resume.pdf", "John Doe"},
		{"docx file name", "john-doe-cv.docx", "John Doe"},
		{"doc file name", "Priya Raman.doc", "Priya Raman"},
		{"txt file name", "priya_raman.txt", "Priya Raman"},
		{"filler words", "Jane_Smith_Resume_Final_Updated.pdf", "Jane Smith"},
		{"years and digits", "Jane Smith 2024.pdf", "Jane Smith"},
		{"version digits leave a letter", "Jane Smith v2.pdf", "Jane Smith V"},
		{"special characters", "Jane (Smith)!", "Jane Smith"},
		{"apostrophe kept", "mary o'neil", "Mary O'neil"},
		{"document word removed", "Jane Smith Document.pdf", "Jane Smith"},
		{"empty", "", "Candidate"},
		{"only filler", "Resume_Final.pdf", "Candidate"},
		{"too many words", "One Two Three Four Five", "Candidate"},
		{"single letter", "J", "Candidate"},
		{"file indicator remains", "Jane File", "Candidate"},
		{"whitespace only", "   ", "Candidate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanName(tt.input))
		})
	}
}

func TestCleanName_TooLong(t *testing.T) {
	long := strings.Repeat("a", 30) + " " + strings.Repeat("b", 30)
	assert.Equal(t, CandidateSentinel, CleanName(long))
}

func TestCleanName_Idempotent(t *testing.T) {
	inputs := []string{
		"John_Doe_Resume.pdf",
		"jane smith",
		"mary o'neil",
		"Resume_Final.pdf",
		"One Two Three Four Five",
		"Jane Smith 2024 v2.pdf",
		"Candidate",
		"",
		"ÉLodie Dupont",
		"x",
		"Jarescvume Doe",
		"Accvvb Smith",
		"Rrescvumee Smith",
		"Jaresu1me Doe",
		"res.ume Smith",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once := CleanName(input)
			assert.Equal(t, once, CleanName(once))
		})
	}
}

func TestCleanName_NestedResumeTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Jarescvume Doe", "Ja Doe"},
		{"Accvvb Smith", "Ab Smith"},
		{"Rrescvumee Smith", "Re Smith"},
		{"Jaresu1me Doe", "Ja Doe"},
		{"res.ume Smith", "Smith"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanName(tt.input))
		})
	}
}
