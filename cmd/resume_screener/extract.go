package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured candidate profile from one resume",
	Long:  "Extract a structured Candidate JSON from a resume file. The output validates against the candidate schema.",
	RunE:  runExtract,
}

var (
	extractInputFile  string
	extractOutputFile string
	extractProvider   string
	extractModel      string
	extractAPIKey     string
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to resume file (.txt, .md, .pdf, .docx)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	extractCmd.Flags().StringVar(&extractProvider, "provider", "", "LLM provider (gemini or openai)")
	extractCmd.Flags().StringVar(&extractModel, "model", "", "Model override for the standard tier")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "API key (defaults to GEMINI_API_KEY / OPENAI_API_KEY)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a summary of the extracted candidate")
	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	doc, err := ingestion.LoadFile(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	cfg := config.Config{Provider: extractProvider, Model: extractModel, APIKey: extractAPIKey}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := newLLMClient(ctx, &cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	candidate, err := extraction.NewExtractor(client, extraction.WithTier(cfg.ModelTier())).ExtractCandidate(ctx, doc.Resume)
	if err != nil {
		return fmt.Errorf("failed to extract candidate: %w", err)
	}

	if extractVerbose {
		observability.NewPrinter(os.Stderr).PrintCandidate(candidate)
	}

	if err := writeJSON(cmd.OutOrStdout(), extractOutputFile, candidate); err != nil {
		return err
	}
	if err := validateOutput(candidateSchema, candidate, extractOutputFile); err != nil {
		return err
	}
	if extractOutputFile != "" {
		logger.Info().Str("output", extractOutputFile).Str("candidate", candidate.Name).Msg("extracted candidate")
	}
	return nil
}

// newLLMClient resolves provider, model and API key from cfg and opens a client
func newLLMClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	llmCfg, err := cfg.LLMConfig()
	if err != nil {
		return nil, err
	}

	apiKey := cfg.ResolveAPIKey(llmCfg.Provider)
	if apiKey == "" {
		return nil, fmt.Errorf("%s environment variable or --api-key flag is required", llmCfg.Provider.APIKeyEnv())
	}

	client, err := llm.NewClient(ctx, llmCfg, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, nil
}
