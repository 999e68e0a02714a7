package normalize

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail returns the trimmed address when it is well formed and
// types.NotProvided otherwise.
func ValidateEmail(raw string) string {
	if raw == "" || raw == types.NotProvided {
		return types.NotProvided
	}

	trimmed := strings.TrimSpace(raw)
	if emailRe.MatchString(trimmed) {
		return trimmed
	}

	return types.NotProvided
}
