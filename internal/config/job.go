package config

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/types"
)

// LoadJobDescription reads a job description from a JSON or YAML file and validates it
func LoadJobDescription(path string) (*types.JobDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job description %s: %w", path, err)
	}

	var job types.JobDescription
	if err := decode(path, data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job description: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job description: %w", err)
	}

	return &job, nil
}
