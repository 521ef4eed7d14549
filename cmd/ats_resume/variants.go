package main

import (
	"fmt"
	"os"

	"github.com/jonathan/ats-resume/internal/builder"
	"github.com/jonathan/ats-resume/internal/config"
	"github.com/jonathan/ats-resume/internal/rendering"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "Render the default, technical and management resumes",
	Long: `Builds the three standard resume variants from a CV JSON file and writes
each to <out-dir>/<variant>_resume.txt.`,
	RunE: runVariants,
}

var (
	variantsCV     string
	variantsOutDir string
)

func init() {
	variantsCmd.Flags().StringVarP(&variantsCV, "cv", "c", "", "Path to CV JSON file, - for stdin (required, via flag or config)")
	variantsCmd.Flags().StringVarP(&variantsOutDir, "out-dir", "o", "", "Directory for the variant files (default: output)")

	rootCmd.AddCommand(variantsCmd)
}

func runVariants(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd, func(cfg *config.Config) {
		if cmd.Flags().Changed("cv") {
			cfg.CV = variantsCV
		}
		if cmd.Flags().Changed("out-dir") {
			cfg.OutDir = variantsOutDir
		}
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.CV == "" {
		return fmt.Errorf("--cv is required (via flag or config)")
	}

	b, err := loadBuilder(cfg.CV)
	if err != nil {
		return fmt.Errorf("failed to load CV: %w", err)
	}
	logger.Debug("loaded CV", zap.String("path", cfg.CV))

	variants := b.BuildVariants()
	logger.Debug("built variants", zap.Strings("variants", builder.VariantNames()))

	if cfg.Verbose {
		cv := b.CV()
		printer := verbosePrinter()
		printer.PrintCV(&cv)
		for _, name := range builder.VariantNames() {
			printer.PrintVariant(name, variants[name])
		}
	}

	paths, err := rendering.WriteVariants(cfg.OutDir, variants)
	if err != nil {
		return fmt.Errorf("failed to write variants: %w", err)
	}

	for _, path := range paths {
		logger.Info("wrote variant", zap.String("path", path))
		_, _ = fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
	}

	return nil
}
