package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/internal/types"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen a batch of resumes against a job description",
	Long: `Extract every resume in a directory or S3 prefix, score each candidate against
a job description and write the ranked shortlist as JSON.

Configuration can be loaded from a JSON or YAML file using --config. Command-line arguments override config file values.`,
	RunE: runScreen,
}

var (
	screenConfigPath  string
	screenJob         string
	screenDir         string
	screenBucket      string
	screenPrefix      string
	screenRegion      string
	screenEndpoint    string
	screenTopN        int
	screenOutput      string
	screenDatabaseURL string
	screenProvider    string
	screenModel       string
	screenAPIKey      string
	screenVerbose     bool
)

func init() {
	screenCmd.Flags().StringVar(&screenConfigPath, "config", "", "Path to config file, .json or .yaml (values can be overridden by other flags)")
	screenCmd.Flags().StringVarP(&screenJob, "job", "j", "", "Path to job description (JSON or YAML)")
	screenCmd.Flags().StringVarP(&screenDir, "dir", "d", "", "Directory of resumes (mutually exclusive with --bucket)")
	screenCmd.Flags().StringVar(&screenBucket, "bucket", "", "S3 bucket holding resumes (mutually exclusive with --dir)")
	screenCmd.Flags().StringVar(&screenPrefix, "prefix", "", "S3 key prefix")
	screenCmd.Flags().StringVar(&screenRegion, "region", "", "S3 region (defaults to AWS_REGION)")
	screenCmd.Flags().StringVar(&screenEndpoint, "endpoint", "", "S3-compatible endpoint URL")
	screenCmd.Flags().IntVarP(&screenTopN, "top", "n", 0, "Number of candidates to shortlist (overrides the job description)")
	screenCmd.Flags().StringVarP(&screenOutput, "out", "o", "", "Path to shortlist JSON (defaults to stdout)")
	screenCmd.Flags().StringVar(&screenDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	screenCmd.Flags().StringVar(&screenProvider, "provider", "", "LLM provider (gemini or openai)")
	screenCmd.Flags().StringVar(&screenModel, "model", "", "Model override for the selected tier")
	screenCmd.Flags().StringVar(&screenAPIKey, "api-key", "", "API key (defaults to GEMINI_API_KEY / OPENAI_API_KEY)")
	screenCmd.Flags().BoolVarP(&screenVerbose, "verbose", "v", false, "Print each candidate and the shortlist")

	rootCmd.AddCommand(screenCmd)
}

func runScreen(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := resolveScreenConfig(cmd)
	if err != nil {
		return err
	}

	job, err := config.LoadJobDescription(cfg.Job)
	if err != nil {
		return err
	}
	if cfg.TopN > 0 {
		job.TopNCandidates = cfg.TopN
	}

	docs, source, err := loadDocuments(ctx, &cfg)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no supported resumes found in %s", source)
	}
	logger.Info().Int("resumes", len(docs)).Str("source", source).Msg("loaded resumes")

	client, err := newLLMClient(ctx, &cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	var extractor screening.CandidateExtractor = extraction.NewExtractor(client, extraction.WithTier(cfg.ModelTier()))
	printer := observability.NewPrinter(os.Stderr)
	if cfg.Verbose {
		extractor = &printingExtractor{next: extractor, printer: printer}
	}

	var recorder *runRecorder
	if cfg.DatabaseURL != "" {
		database, err := connectDatabase(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()

		reportPreviouslyScreened(ctx, database, docs)
		if recorder, err = startRun(ctx, database, job.Title, source); err != nil {
			return err
		}
	}

	shortlist, err := screening.NewScreener(extractor).Screen(ctx, ingestion.Resumes(docs), job)
	if err != nil {
		recorder.fail()
		return err
	}

	if cfg.Verbose {
		printer.PrintShortlist(shortlist)
	}

	if err := writeJSON(cmd.OutOrStdout(), cfg.Output, shortlist); err != nil {
		recorder.fail()
		return err
	}
	if err := validateOutput(shortlistSchema, shortlist, cfg.Output); err != nil {
		recorder.fail()
		return err
	}

	if err := recorder.finish(ctx, shortlist, contentHashes(docs)); err != nil {
		return err
	}

	logger.Info().
		Str("job", shortlist.JobTitle).
		Int("screened", shortlist.Screened).
		Int("shortlisted", len(shortlist.Candidates)).
		Msg("screening complete")
	return nil
}

// resolveScreenConfig loads the optional config file, applies explicitly set
// flags over it and checks the required inputs.
func resolveScreenConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if screenConfigPath != "" {
		loadedCfg, err := config.LoadConfig(screenConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
		logger.Debug().Str("config", screenConfigPath).Msg("loaded config")
	}

	// Only override if the flag was explicitly set
	flags := cmd.Flags()
	overrides := []struct {
		flag string
		dst  *string
		val  string
	}{
		{"job", &cfg.Job, screenJob},
		{"dir", &cfg.ResumeDir, screenDir},
		{"bucket", &cfg.S3Bucket, screenBucket},
		{"prefix", &cfg.S3Prefix, screenPrefix},
		{"region", &cfg.S3Region, screenRegion},
		{"endpoint", &cfg.S3Endpoint, screenEndpoint},
		{"out", &cfg.Output, screenOutput},
		{"db-url", &cfg.DatabaseURL, screenDatabaseURL},
		{"provider", &cfg.Provider, screenProvider},
		{"model", &cfg.Model, screenModel},
		{"api-key", &cfg.APIKey, screenAPIKey},
	}
	for _, o := range overrides {
		if flags.Changed(o.flag) {
			*o.dst = o.val
		}
	}
	if flags.Changed("top") {
		cfg.TopN = screenTopN
	}
	if flags.Changed("verbose") {
		cfg.Verbose = screenVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		S3Region:    os.Getenv("AWS_REGION"),
	})

	if err := checkScreenInputs(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// checkScreenInputs verifies that a job and exactly one resume source are set
func checkScreenInputs(cfg *config.Config) error {
	if cfg.Job == "" {
		return fmt.Errorf("--job must be provided (via flag or config)")
	}
	if cfg.ResumeDir == "" && cfg.S3Bucket == "" {
		return fmt.Errorf("either --dir or --bucket must be provided (via flag or config)")
	}
	if cfg.ResumeDir != "" && cfg.S3Bucket != "" {
		return fmt.Errorf("--dir and --bucket are mutually exclusive; provide only one")
	}
	if cfg.TopN < 0 {
		return fmt.Errorf("--top must be non-negative")
	}
	return nil
}

// loadDocuments reads resumes from the configured directory or S3 prefix and
// returns them with a description of where they came from.
func loadDocuments(ctx context.Context, cfg *config.Config) ([]*ingestion.Document, string, error) {
	if cfg.ResumeDir != "" {
		docs, err := ingestion.LoadDir(ctx, cfg.ResumeDir)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load resumes: %w", err)
		}
		return docs, cfg.ResumeDir, nil
	}

	src, err := ingestion.NewS3Source(ctx, ingestion.S3Config{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	})
	if err != nil {
		return nil, "", err
	}
	source := fmt.Sprintf("s3://%s/%s", cfg.S3Bucket, cfg.S3Prefix)
	docs, err := src.Load(ctx, cfg.S3Prefix)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load resumes: %w", err)
	}
	return docs, source, nil
}

// contentHashes maps each document's resume name to the hash of its text
func contentHashes(docs []*ingestion.Document) map[string]string {
	hashes := make(map[string]string, len(docs))
	for _, d := range docs {
		if d.Metadata != nil {
			hashes[d.Resume.Name] = d.Metadata.Hash
		}
	}
	return hashes
}

// printingExtractor prints every candidate as it is extracted
type printingExtractor struct {
	next    screening.CandidateExtractor
	printer *observability.Printer
}

func (p *printingExtractor) ExtractCandidate(ctx context.Context, resume types.RawResume) (*types.Candidate, error) {
	c, err := p.next.ExtractCandidate(ctx, resume)
	if err == nil {
		p.printer.PrintCandidate(c)
	}
	return c, err
}
