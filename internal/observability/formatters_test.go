package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/ats-resume/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintCV(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	cv := &types.CV{
		Basics: types.Basics{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
		Summaries: []types.Summary{
			{Priority: 1, SummaryType: "technical", Summary: []string{"Builds systems."}},
		},
		Work: []types.WorkEntry{
			{ID: "1", Name: "Acme", StartDate: "2020", Positions: []types.Position{
				{ID: "p1", StartDate: "2020", Position: "Engineer"},
				{ID: "p2", StartDate: "2021", Position: "Lead"},
			}},
		},
		Skills: []types.Skill{{ID: "s1", Level: "Expert", Name: "Go"}},
	}

	p.PrintCV(cv)
	output := buf.String()

	assert.Contains(t, output, "LOADED CV")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "1 (2 positions)")
	assert.Contains(t, output, "technical (priority 1)")
}

func TestPrintCV_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCV(nil)

	assert.Empty(t, buf.String())
}

func TestPrintVariant(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	text := "Jane Doe\njane@example.com\n\nPROFESSIONAL SUMMARY\nBuilds systems.\n\nSKILLS\nGo, Rust"
	p.PrintVariant("technical", text)
	output := buf.String()

	assert.Contains(t, output, "VARIANT: TECHNICAL")
	assert.Contains(t, output, "Contact: Jane Doe")
	assert.Contains(t, output, "• PROFESSIONAL SUMMARY")
	assert.Contains(t, output, "• SKILLS")
	assert.NotContains(t, output, "• Go, Rust")
}

func TestPrintVariant_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintVariant("default", "")

	assert.Contains(t, buf.String(), "(empty)")
}

func TestIsHeaderLine(t *testing.T) {
	assert.True(t, isHeaderLine("WORK EXPERIENCE"))
	assert.True(t, isHeaderLine("VOLUNTEER EXPERIENCE"))
	assert.False(t, isHeaderLine("Jane Doe"))
	assert.False(t, isHeaderLine(""))
	assert.False(t, isHeaderLine("IBM — ACME (2020 - PRESENT)"))
}

func TestPrintViolations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	line := 4
	violations := []types.Violation{
		{Type: types.ViolationLineTooLong, Severity: "warning", Details: "Line exceeds 100 characters (122 characters)", LineNumber: &line},
		{Type: types.ViolationNonPlainCharacter, Severity: "warning", Details: "Non-plain characters: U+2022"},
	}

	p.PrintViolations(violations)
	output := buf.String()

	assert.Contains(t, output, "ATS LINT VIOLATIONS")
	assert.Contains(t, output, "Found 2 violations")
	assert.Contains(t, output, "line_too_long (line 4)")
	assert.Contains(t, output, "non_plain_character")
}

func TestPrintViolations_None(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintViolations(nil)

	assert.Contains(t, buf.String(), "NO VIOLATIONS FOUND")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}
