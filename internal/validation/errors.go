// Package validation lints rendered resume text for ATS-unfriendly content.
package validation

import "fmt"

// FileReadError represents an error reading a rendered resume file
type FileReadError struct {
	Message string
	Cause   error
}

func (e *FileReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("file read error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("file read error: %s", e.Message)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}
