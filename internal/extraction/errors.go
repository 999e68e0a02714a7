package extraction

import "fmt"

// APICallError wraps a failed call to the LLM provider
type APICallError struct {
	Resume string
	Model  string
	Cause  error
}

func (e *APICallError) Error() string {
	if e.Resume != "" {
		return fmt.Sprintf("LLM call failed for %s (model %s): %v", e.Resume, e.Model, e.Cause)
	}
	return fmt.Sprintf("LLM call failed (model %s): %v", e.Model, e.Cause)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}
