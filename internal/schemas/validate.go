// Package schemas provides JSON Schema validation for CV records.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed cv.schema.json
var cvSchema []byte

// CVSchema returns the raw JSON Schema describing a CV record.
func CVSchema() []byte {
	return cvSchema
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
// Type is the gojsonschema error type, e.g. "required" or "invalid_type".
type FieldError struct {
	Field   string
	Type    string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// FirstMissing returns the first "required" failure, if any
func (ve *ValidationError) FirstMissing() (FieldError, bool) {
	for _, fe := range ve.Errors {
		if fe.Type == "required" {
			return fe, true
		}
	}
	return FieldError{}, false
}

var compiledCVSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(cvSchema))
})

// ValidateCVBytes validates a JSON document against the embedded CV schema.
// The document must already be syntactically valid JSON.
func ValidateCVBytes(data []byte) error {
	schema, err := compiledCVSchema()
	if err != nil {
		return &SchemaLoadError{
			Path:    "cv.schema.json",
			Message: "failed to compile embedded schema",
			Cause:   err,
		}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &SchemaLoadError{
			Path:    "cv.schema.json",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	return toValidationError(result)
}

func toValidationError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   fieldPath(desc),
			Type:    desc.Type(),
			Message: desc.Description(),
		})
	}

	return validationErr
}

// fieldPath builds a dotted path for an error. Required errors are reported
// against the parent object, so the missing property is appended.
func fieldPath(desc gojsonschema.ResultError) string {
	path := strings.TrimPrefix(desc.Context().String(), gojsonschema.STRING_CONTEXT_ROOT)
	path = strings.TrimPrefix(path, ".")

	if desc.Type() == "required" {
		if prop, ok := desc.Details()["property"].(string); ok && prop != "" {
			switch {
			case path == "":
				path = prop
			case path != prop && !strings.HasSuffix(path, "."+prop):
				path = path + "." + prop
			}
		}
	}

	if path == "" {
		return "(root)"
	}
	return path
}
