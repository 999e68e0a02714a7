package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/schemas"
)

const (
	candidateSchema = "schemas/candidate.schema.json"
	shortlistSchema = "schemas/shortlist.schema.json"
)

// writeJSON writes v as indented JSON to path, or to w when path is empty
func writeJSON(w io.Writer, path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, err = fmt.Fprintln(w, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// validateOutput checks v against a schema. When the output was written to
// path, the file itself is validated. A schema that cannot be found or loaded
// only produces a warning; a document that fails validation is an error.
func validateOutput(relativeSchemaPath string, v any, path string) error {
	schemaPath := schemas.ResolveSchemaPath(relativeSchemaPath)
	if schemaPath == "" {
		logger.Warn().Str("schema", relativeSchemaPath).Msg("schema not found, skipping output validation")
		return nil
	}

	var err error
	if path != "" {
		err = schemas.ValidateJSON(schemaPath, path)
	} else {
		err = schemas.ValidateValue(schemaPath, v)
	}
	if err == nil {
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Errorf("generated JSON does not validate against schema: %w", err)
	}
	logger.Warn().Err(err).Str("schema", schemaPath).Msg("could not validate output against schema")
	return nil
}
