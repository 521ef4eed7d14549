// Package types provides type definitions for structured data used throughout the ats-resume system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Violation types reported by the plain-text lint
const (
	ViolationLineTooLong       = "line_too_long"
	ViolationNonPlainCharacter = "non_plain_character"
	ViolationForbiddenPhrase   = "forbidden_phrase"
)

// Violation represents a single lint finding in rendered resume text
type Violation struct {
	Type       string  `json:"type"`
	Severity   string  `json:"severity"`
	Details    string  `json:"details"`
	Section    *string `json:"section,omitempty"` // section header the line falls under
	LineNumber *int    `json:"line_number,omitempty"`
	CharCount  *int    `json:"char_count,omitempty"`
}

// Violations represents a collection of lint findings
type Violations struct {
	Violations []Violation `json:"violations"`
}
