// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-parser/internal/matcher"
	"github.com/jonathan/cv-parser/internal/types"
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
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens a string for box display.
func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

// PrintDocument outputs a human-readable summary of the extracted document.
func (p *Printer) PrintDocument(doc *types.ExtractedDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", doc.Name))
	if doc.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", doc.Email))
	}
	if doc.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:  %s\n", doc.Phone))
	}
	if doc.Contact.Location != "" {
		sb.WriteString(fmt.Sprintf("Where:  %s\n", doc.Contact.Location))
	} else if doc.Contact.Country != "" {
		sb.WriteString(fmt.Sprintf("Where:  %s\n", doc.Contact.Country))
	}
	sb.WriteString("\n")

	if len(doc.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d): %s\n",
			len(doc.Skills), truncate(strings.Join(doc.Skills, ", "), 40)))
	}
	if len(doc.Languages) > 0 {
		sb.WriteString(fmt.Sprintf("Languages:   %s\n", strings.Join(doc.Languages, ", ")))
	}

	if len(doc.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		count := min(len(doc.Education), 3)
		for i := 0; i < count; i++ {
			entry := doc.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s", truncate(entry.Degree, 45)))
			if entry.Year != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", entry.Year))
			}
			sb.WriteString("\n")
		}
		if len(doc.Education) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Education)-3))
		}
	}

	if len(doc.Experience) > 0 {
		sb.WriteString("\nExperience:\n")
		count := min(len(doc.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := doc.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", truncate(entry.Title, 40)))
			if entry.Company != "" {
				sb.WriteString(fmt.Sprintf(" @ %s", truncate(entry.Company, 20)))
			}
			sb.WriteString("\n")
		}
		if len(doc.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Experience)-maxItemsToShow))
		}
	}

	if len(doc.Projects) > 0 {
		sb.WriteString("\nProjects:\n")
		count := min(len(doc.Projects), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(doc.Projects[i].Name, 45)))
		}
		if len(doc.Projects) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Projects)-3))
		}
	}

	p.printBox("EXTRACTED DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the scored job matches returned by the matcher service.
func (p *Printer) PrintMatches(resp *matcher.PredictResponse) {
	if resp == nil || len(resp.Matches) == 0 {
		p.printBox("JOB MATCHES", "No matches returned")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Algorithm: %s\n", truncate(resp.Algorithm, 42)))
	sb.WriteString(fmt.Sprintf("Corpus:    %d jobs\n\n", resp.TotalJobs))

	count := min(len(resp.Matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := resp.Matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, truncate(m.JobTitle, 45)))
		sb.WriteString(fmt.Sprintf("    %s", truncate(m.Company, 30)))
		if m.Location != "" {
			sb.WriteString(fmt.Sprintf(" — %s", truncate(m.Location, 15)))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    Score: %.1f%%\n", m.MatchScore))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(resp.Matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(resp.Matches)-maxItemsToShow))
	}

	p.printBox("JOB MATCHES", sb.String())
}

// PrintConversionWarnings outputs per-page extraction warnings.
func (p *Printer) PrintConversionWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d warnings:\n\n", len(warnings)))
	for i, w := range warnings {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", truncate(w, 50)))
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CONVERSION WARNINGS", sb.String())
}
