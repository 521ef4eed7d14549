package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/ats-resume/internal/config"
	"github.com/jonathan/ats-resume/internal/parsing"
	"github.com/jonathan/ats-resume/internal/schemas"
	"github.com/jonathan/ats-resume/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a CV JSON file",
	Long: `Checks a CV JSON file against the CV schema and reports the first missing required
field or type mismatch. A null optional field counts as absent.

This check is stricter than rendering: render and variants accept a required field
that is present but empty (for example "email": ""), while validate rejects it.`,
	RunE: runValidate,
}

var validateCV string

func init() {
	validateCmd.Flags().StringVarP(&validateCV, "cv", "c", "", "Path to CV JSON file, - for stdin (required, via flag or config)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd, func(cfg *config.Config) {
		if cmd.Flags().Changed("cv") {
			cfg.CV = validateCV
		}
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.CV == "" {
		return fmt.Errorf("--cv is required (via flag or config)")
	}

	cv, err := loadCV(cfg.CV)
	if err != nil {
		return describeCVError(err)
	}

	// Schema checks presence; this also rejects empty required strings
	if err := cv.Validate(); err != nil {
		return fmt.Errorf("CV is invalid (renders, but a required field is empty): %w", err)
	}

	logger.Debug("validated CV", zap.String("path", cfg.CV))

	if cfg.Verbose {
		verbosePrinter().PrintCV(cv)
	}

	_, _ = fmt.Fprintf(os.Stdout, "CV is valid: %s %s (%d work entries, %d skills)\n",
		cv.Basics.FirstName, cv.Basics.LastName, len(cv.Work), len(cv.Skills))
	return nil
}

// describeCVError turns a CV loading failure into a user-facing error
func describeCVError(err error) error {
	var missingErr *types.MissingFieldError
	if errors.As(err, &missingErr) {
		return fmt.Errorf("CV is invalid: %w", missingErr)
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Errorf("CV is invalid: %w", validationErr)
	}

	var loadErr *parsing.LoadError
	if errors.As(err, &loadErr) {
		return fmt.Errorf("CV file not readable: %w", err)
	}

	return fmt.Errorf("CV is invalid: %w", err)
}
