package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/ats-resume/internal/config"
	"github.com/jonathan/ats-resume/internal/types"
	"github.com/jonathan/ats-resume/internal/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check resume text for ATS-unfriendly lines",
	Long: `Lints a rendered resume for lines longer than --max-chars, for characters
ATS parsers commonly drop (tabs, control characters, bullets, smart quotes)
and for any --forbid phrases.

Either lint an existing text file with --in, or render a variant of a CV with
--cv and --variant and lint the result. Exits non-zero when violations are found.`,
	RunE: runLint,
}

var (
	lintInput    string
	lintCV       string
	lintVariant  string
	lintMaxChars int
	lintForbid   []string
	lintOutput   string
)

func init() {
	lintCmd.Flags().StringVarP(&lintInput, "in", "i", "", "Path to rendered resume text file")
	lintCmd.Flags().StringVarP(&lintCV, "cv", "c", "", "Path to CV JSON file to render and lint (- for stdin)")
	lintCmd.Flags().StringVar(&lintVariant, "variant", "", "Variant to render when linting a CV")
	lintCmd.Flags().IntVar(&lintMaxChars, "max-chars", 0, "Maximum characters per line (0 disables, default 100)")
	lintCmd.Flags().StringSliceVar(&lintForbid, "forbid", nil, "Phrases to reject, matched case-insensitively")
	lintCmd.Flags().StringVarP(&lintOutput, "out", "o", "", "Path to output violations JSON file (optional)")

	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd, func(cfg *config.Config) {
		if cmd.Flags().Changed("cv") {
			cfg.CV = lintCV
		}
		if cmd.Flags().Changed("variant") {
			cfg.Variant = lintVariant
		}
		if cmd.Flags().Changed("max-chars") {
			cfg.MaxLineChars = intPtr(lintMaxChars)
		}
		if cmd.Flags().Changed("forbid") {
			cfg.ForbiddenPhrases = lintForbid
		}
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := validation.Options{
		MaxLineChars:     *cfg.MaxLineChars,
		ForbiddenPhrases: cfg.ForbiddenPhrases,
	}

	var violations []types.Violation
	switch {
	case lintInput != "":
		violations, err = validation.CheckFile(lintInput, opts)
		if err != nil {
			return fmt.Errorf("lint failed: %w", err)
		}
		logger.Debug("linted file", zap.String("path", lintInput))
	case cfg.CV != "":
		text, err := renderForLint(cfg)
		if err != nil {
			return err
		}
		violations = validation.CheckText(text, opts)
		logger.Debug("linted rendered CV", zap.String("path", cfg.CV), zap.String("variant", cfg.Variant))
	default:
		return fmt.Errorf("either --in or --cv must be provided")
	}

	if lintOutput != "" {
		if err := writeViolations(lintOutput, violations); err != nil {
			return err
		}
	}

	if cfg.Verbose {
		verbosePrinter().PrintViolations(violations)
	}

	if len(violations) == 0 {
		_, _ = fmt.Fprintf(os.Stdout, "Lint passed: No violations found\n")
		return nil
	}

	for _, v := range violations {
		_, _ = fmt.Fprintf(os.Stdout, "%s: %s\n", v.Type, v.Details)
	}

	// Return error to indicate violations were found (exit code 1)
	return fmt.Errorf("lint found %d violation(s)", len(violations))
}

func renderForLint(cfg config.Config) (string, error) {
	buildCfg, err := cfg.BuildConfig()
	if err != nil {
		return "", err
	}

	b, err := loadBuilder(cfg.CV)
	if err != nil {
		return "", fmt.Errorf("failed to load CV: %w", err)
	}
	return b.Build(buildCfg), nil
}

func writeViolations(path string, violations []types.Violation) error {
	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if violations == nil {
		violations = []types.Violation{}
	}

	jsonBytes, err := json.MarshalIndent(types.Violations{Violations: violations}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal violations to JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write violations to output file: %w", err)
	}
	return nil
}
