// Package types provides type definitions for structured data used throughout the ats-resume system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// MissingFieldError reports a required CV field that is absent.
// Field is a dotted path such as "basics.email" or "work.0.positions.1.position".
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}
