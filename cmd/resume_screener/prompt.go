package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the extraction prompt for a resume",
	Long:  "Render the candidate extraction prompt for a resume file without calling the LLM.",
	RunE:  runPrompt,
}

var promptInputFile string

func init() {
	promptCmd.Flags().StringVarP(&promptInputFile, "in", "i", "", "Path to resume file (.txt, .md, .pdf, .docx)")
	_ = promptCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, _ []string) error {
	doc, err := ingestion.LoadFile(promptInputFile)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), extraction.BuildPrompt(doc.Resume.Content))
	return err
}
