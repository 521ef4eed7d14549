// Package parsing decodes CV records from their canonical JSON representation.
package parsing

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/ats-resume/internal/schemas"
	"github.com/jonathan/ats-resume/internal/types"
)

// DecodeCV decodes a CV from JSON. Missing or null optional fields decode as absent.
// A missing required field yields a *DecodeError wrapping *types.MissingFieldError;
// no partial CV is returned on error.
func DecodeCV(data []byte) (*types.CV, error) {
	if !json.Valid(data) {
		var syntax any
		return nil, &DecodeError{
			Message: "failed to unmarshal JSON",
			Cause:   json.Unmarshal(data, &syntax),
		}
	}

	if err := schemas.ValidateCVBytes(data); err != nil {
		return nil, schemaDecodeError(err)
	}

	var cv types.CV
	if err := json.Unmarshal(data, &cv); err != nil {
		return nil, &DecodeError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	return &cv, nil
}

// ReadCV decodes a CV from a reader
func ReadCV(r io.Reader) (*types.CV, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{
			Message: "failed to read CV",
			Cause:   err,
		}
	}
	return DecodeCV(data)
}

// LoadCV loads a CV from a JSON file
func LoadCV(path string) (*types.CV, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return DecodeCV(content)
}

func schemaDecodeError(err error) error {
	var validationErr *schemas.ValidationError
	if !errors.As(err, &validationErr) {
		return &DecodeError{Message: "failed to validate CV", Cause: err}
	}

	if missing, ok := validationErr.FirstMissing(); ok {
		return &DecodeError{
			Message: "CV record is incomplete",
			Cause:   &types.MissingFieldError{Field: missing.Field},
		}
	}

	return &DecodeError{
		Message: "CV record does not match schema",
		Cause:   validationErr,
	}
}
