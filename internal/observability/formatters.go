// Package observability provides logging and formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/ats-resume/internal/types"
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
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// PrintCV outputs a human-readable summary of a loaded CV.
func (p *Printer) PrintCV(cv *types.CV) {
	if cv == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s %s\n", cv.Basics.FirstName, cv.Basics.LastName))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", cv.Basics.Email))
	sb.WriteString("\n")

	positions := 0
	for _, entry := range cv.Work {
		positions += len(entry.Positions)
	}

	sb.WriteString(fmt.Sprintf("Summaries:    %d\n", len(cv.Summaries)))
	sb.WriteString(fmt.Sprintf("Employers:    %d (%d positions)\n", len(cv.Work), positions))
	sb.WriteString(fmt.Sprintf("Education:    %d\n", len(cv.Education)))
	sb.WriteString(fmt.Sprintf("Skills:       %d\n", len(cv.Skills)))
	sb.WriteString(fmt.Sprintf("Volunteer:    %d\n", len(cv.Volunteer)))
	sb.WriteString(fmt.Sprintf("Publications: %d\n", len(cv.Publications)))

	// Summary types
	if len(cv.Summaries) > 0 {
		sb.WriteString("\nSummary types:\n")
		count := min(len(cv.Summaries), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := cv.Summaries[i]
			sb.WriteString(fmt.Sprintf("  • %s (priority %d)\n", s.SummaryType, s.Priority))
		}
		if len(cv.Summaries) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(cv.Summaries)-maxItemsToShow))
		}
	}

	p.printBox("LOADED CV", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintVariant outputs the section headers and size of one rendered resume.
func (p *Printer) PrintVariant(name string, text string) {
	if text == "" {
		p.printBox(fmt.Sprintf("VARIANT: %s", strings.ToUpper(name)), "(empty)")
		return
	}

	lines := strings.Split(text, "\n")

	var headers []string
	for _, line := range lines {
		if isHeaderLine(line) {
			headers = append(headers, line)
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Lines: %d  Characters: %d\n", len(lines), utf8.RuneCountInString(text)))
	sb.WriteString(fmt.Sprintf("Contact: %s\n", lines[0]))

	if len(headers) > 0 {
		sb.WriteString("\nSections:\n")
		for _, header := range headers {
			sb.WriteString(fmt.Sprintf("  • %s\n", header))
		}
	}

	p.printBox(fmt.Sprintf("VARIANT: %s", strings.ToUpper(name)), strings.TrimSuffix(sb.String(), "\n"))
}

// isHeaderLine reports whether a line is an all-caps section header
func isHeaderLine(line string) bool {
	if line == "" || strings.ToUpper(line) != line {
		return false
	}
	return strings.IndexFunc(line, func(r rune) bool { return r >= 'A' && r <= 'Z' }) >= 0 &&
		!strings.ContainsAny(line, "@0123456789—-")
}

// PrintViolations outputs any lint violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations []types.Violation) {
	if len(violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations)))

	for i, v := range violations {
		location := ""
		if v.LineNumber != nil {
			location = fmt.Sprintf(" (line %d)", *v.LineNumber)
		}
		sb.WriteString(fmt.Sprintf("⚠ %s%s\n", v.Type, location))
		sb.WriteString(fmt.Sprintf("  %s\n", truncate(v.Details, 45)))
		if i < len(violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ATS LINT VIOLATIONS", sb.String())
}
