package parsing

import "fmt"

// DecodeError represents a malformed CV record. Cause is a
// *types.MissingFieldError, a *schemas.ValidationError or a JSON syntax error.
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// LoadError represents an error reading a CV source
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
