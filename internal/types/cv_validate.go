// Package types provides type definitions for structured data used throughout the ats-resume system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var cvValidator = newCVValidator()

func newCVValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

var namespaceReplacer = strings.NewReplacer("[", ".", "]", "")

// Validate checks that every required field of an in-memory CV is set.
// An empty required string counts as missing. The first failure is returned
// as a *MissingFieldError.
func (c *CV) Validate() error {
	err := cvValidator.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &MissingFieldError{Field: fieldPath(fieldErrs[0].Namespace())}
	}
	return err
}

// fieldPath turns a validator namespace like "CV.work[0].name" into "work.0.name"
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		namespace = namespace[i+1:]
	}
	return namespaceReplacer.Replace(namespace)
}
