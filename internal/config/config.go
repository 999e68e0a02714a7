// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/logger"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// LLM
	Provider string `json:"provider,omitempty" yaml:"provider"` // gemini or openai
	APIKey   string `json:"api_key,omitempty" yaml:"api_key"`   // falls back to GEMINI_API_KEY / OPENAI_API_KEY
	Model    string `json:"model,omitempty" yaml:"model"`       // overrides the model of the selected tier
	Tier     string `json:"tier,omitempty" yaml:"tier"`         // lite, standard or advanced
	BaseURL  string `json:"base_url,omitempty" yaml:"base_url"` // OpenAI-compatible endpoint

	// Inputs
	Job        string `json:"job,omitempty" yaml:"job"`               // Path to job description (JSON or YAML)
	ResumeDir  string `json:"resume_dir,omitempty" yaml:"resume_dir"` // Directory of resumes
	S3Bucket   string `json:"s3_bucket,omitempty" yaml:"s3_bucket"`
	S3Prefix   string `json:"s3_prefix,omitempty" yaml:"s3_prefix"`
	S3Region   string `json:"s3_region,omitempty" yaml:"s3_region"`
	S3Endpoint string `json:"s3_endpoint,omitempty" yaml:"s3_endpoint"`

	// Output
	TopN        int    `json:"top_n,omitempty" yaml:"top_n"`               // Overrides the job's top_n_candidates
	Output      string `json:"output,omitempty" yaml:"output"`             // Shortlist output path
	DatabaseURL string `json:"database_url,omitempty" yaml:"database_url"` // PostgreSQL connection URL
	Verbose     bool   `json:"verbose,omitempty" yaml:"verbose"`           // Print candidates as they are screened

	Log logger.Config `json:"log,omitempty" yaml:"log"`
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := decode(path, data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// decode unmarshals YAML for .yaml/.yml paths and JSON otherwise
func decode(path string, data []byte, v any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("invalid YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("invalid JSON: %w", err)
		}
	}
	return nil
}

var (
	validTiers      = map[string]bool{"": true, string(llm.TierLite): true, string(llm.TierStandard): true, string(llm.TierAdvanced): true}
	validLogLevels  = map[string]bool{"": true, "trace": true, "debug": true, "info": true, "warn": true, "error": true}
	validLogFormats = map[string]bool{"": true, "json": true, "pretty": true}
)

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Provider != "" {
		if _, err := llm.ConfigForProvider(c.Provider); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	if !validTiers[c.Tier] {
		return fmt.Errorf("config error: unknown tier %q", c.Tier)
	}

	if c.ResumeDir != "" && c.S3Bucket != "" {
		return fmt.Errorf("config error: 'resume_dir' and 's3_bucket' are mutually exclusive")
	}
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("config error: unknown log level %q", c.Log.Level)
	}
	if !validLogFormats[c.Log.Format] {
		return fmt.Errorf("config error: log format must be 'json' or 'pretty'")
	}

	// Validate file paths exist (if specified)
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.ResumeDir != "" {
		if info, err := os.Stat(c.ResumeDir); err != nil || !info.IsDir() {
			return fmt.Errorf("config error: resume directory not found: %s", c.ResumeDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	mergeString(&result.Provider, defaults.Provider)
	mergeString(&result.APIKey, defaults.APIKey)
	mergeString(&result.Model, defaults.Model)
	mergeString(&result.Tier, defaults.Tier)
	mergeString(&result.BaseURL, defaults.BaseURL)
	mergeString(&result.Job, defaults.Job)
	mergeString(&result.ResumeDir, defaults.ResumeDir)
	mergeString(&result.S3Bucket, defaults.S3Bucket)
	mergeString(&result.S3Prefix, defaults.S3Prefix)
	mergeString(&result.S3Region, defaults.S3Region)
	mergeString(&result.S3Endpoint, defaults.S3Endpoint)
	mergeString(&result.Output, defaults.Output)
	mergeString(&result.DatabaseURL, defaults.DatabaseURL)
	mergeString(&result.Log.Level, defaults.Log.Level)
	mergeString(&result.Log.Format, defaults.Log.Format)

	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

func mergeString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

// LLMConfig resolves the provider and model settings into an llm.Config
func (c *Config) LLMConfig() (*llm.Config, error) {
	provider := c.Provider
	if provider == "" {
		provider = string(llm.ProviderGemini)
	}

	llmCfg, err := llm.ConfigForProvider(provider)
	if err != nil {
		return nil, err
	}
	llmCfg.BaseURL = c.BaseURL
	if c.Model != "" {
		llmCfg = llmCfg.WithModel(c.ModelTier(), c.Model)
	}
	return llmCfg, nil
}

// ModelTier returns the configured tier, defaulting to standard
func (c *Config) ModelTier() llm.ModelTier {
	if c.Tier == "" {
		return llm.TierStandard
	}
	return llm.ModelTier(c.Tier)
}

// ResolveAPIKey returns the configured key or the provider's environment variable
func (c *Config) ResolveAPIKey(provider llm.Provider) string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return os.Getenv(provider.APIKeyEnv())
}
