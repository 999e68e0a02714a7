// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// writeList writes a titled bullet list capped at limit items
func writeList(sb *strings.Builder, title string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(title + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
	sb.WriteString("\n")
}

// PrintCandidate outputs a human-readable summary of an extracted candidate.
func (p *Printer) PrintCandidate(c *types.Candidate) {
	if c == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", c.Name))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", c.Email))
	sb.WriteString(fmt.Sprintf("Phone:      %s\n", c.Phone))
	sb.WriteString(fmt.Sprintf("Location:   %s\n", c.Location))
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", c.ExperienceYears))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", c.EducationLevel))
	sb.WriteString("\n")

	if len(c.Experience) > 0 {
		roles := make([]string, 0, len(c.Experience))
		for _, e := range c.Experience {
			roles = append(roles, fmt.Sprintf("%s @ %s (%s)", e.Role, e.Company, e.Duration))
		}
		writeList(&sb, "Experience", roles, 3)
	}

	writeList(&sb, "Technical Skills", c.TechnicalSkills, maxItemsToShow)
	writeList(&sb, "Languages", c.Languages, 3)

	if len(c.Projects) > 0 {
		names := make([]string, 0, len(c.Projects))
		for _, pr := range c.Projects {
			names = append(names, pr.Name)
		}
		writeList(&sb, "Projects", names, 3)
	}

	p.printBox("EXTRACTED CANDIDATE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintShortlist outputs the ranked candidates with their scores and recommendation.
func (p *Printer) PrintShortlist(shortlist *types.Shortlist) {
	if shortlist == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:       %s\n", shortlist.JobTitle))
	sb.WriteString(fmt.Sprintf("Screened:  %d resumes\n", shortlist.Screened))
	sb.WriteString(fmt.Sprintf("Shortlist: %d candidates\n", len(shortlist.Candidates)))

	for i, a := range shortlist.Candidates {
		sb.WriteString("\n")
		name := types.NotProvided
		if a.Candidate != nil {
			name = a.Candidate.Name
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", a.Rank, name))
		sb.WriteString(fmt.Sprintf("    Overall: %d  Skills: %d  Fit: %s\n", a.Scores.Overall, a.Scores.SkillMatch, a.OverallFit))
		sb.WriteString(fmt.Sprintf("    %s\n", a.Recommendation))
		if len(a.RedFlags) > 0 {
			sb.WriteString(fmt.Sprintf("    ⚠ %s\n", strings.Join(a.RedFlags, "; ")))
		}
		if a.ParseError != "" {
			sb.WriteString(fmt.Sprintf("    ✗ %s\n", a.ParseError))
		}
		if i == maxItemsToShow-1 && len(shortlist.Candidates) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("\n... and %d more candidates\n", len(shortlist.Candidates)-maxItemsToShow))
			break
		}
	}

	p.printBox("CANDIDATE SHORTLIST", strings.TrimSuffix(sb.String(), "\n"))
}
