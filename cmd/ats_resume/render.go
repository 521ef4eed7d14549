package main

import (
	"fmt"
	"os"

	"github.com/jonathan/ats-resume/internal/config"
	"github.com/jonathan/ats-resume/internal/rendering"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one plain-text resume from a CV",
	Long: `Renders a single ATS-friendly resume from a CV JSON file.

Starts from a variant preset (default, technical, management) and applies any
explicit overrides: summary type, included sections, keyword filters and caps.
Writes to stdout unless --out is given.`,
	RunE: runRender,
}

var (
	renderCV            string
	renderVariant       string
	renderSummaryType   string
	renderSections      []string
	renderMaxWork       int
	renderMaxSkills     int
	renderWorkKeywords  []string
	renderSkillKeywords []string
	renderOutput        string
)

func init() {
	renderCmd.Flags().StringVarP(&renderCV, "cv", "c", "", "Path to CV JSON file, - for stdin (required, via flag or config)")
	renderCmd.Flags().StringVar(&renderVariant, "variant", "", "Preset to start from: default, technical, management")
	renderCmd.Flags().StringVar(&renderSummaryType, "summary-type", "", "Only consider summaries of this type")
	renderCmd.Flags().StringSliceVar(&renderSections, "sections", nil, "Sections to include (header, summary, work, education, skills, volunteer, publications)")
	renderCmd.Flags().IntVar(&renderMaxWork, "max-work", 0, "Maximum number of work entries")
	renderCmd.Flags().IntVar(&renderMaxSkills, "max-skills", 0, "Maximum number of skills")
	renderCmd.Flags().StringSliceVar(&renderWorkKeywords, "work-keywords", nil, "Keep only positions matching any keyword")
	renderCmd.Flags().StringSliceVar(&renderSkillKeywords, "skill-keywords", nil, "Keep only skills matching any keyword")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Path to output text file (default: stdout)")

	rootCmd.AddCommand(renderCmd)
}

func applyRenderFlags(cmd *cobra.Command) func(*config.Config) {
	return func(cfg *config.Config) {
		if cmd.Flags().Changed("cv") {
			cfg.CV = renderCV
		}
		if cmd.Flags().Changed("variant") {
			cfg.Variant = renderVariant
		}
		if cmd.Flags().Changed("summary-type") {
			cfg.SummaryType = renderSummaryType
		}
		if cmd.Flags().Changed("sections") {
			cfg.Sections = renderSections
		}
		if cmd.Flags().Changed("max-work") {
			maxWork := renderMaxWork
			cfg.MaxWorkEntries = &maxWork
		}
		if cmd.Flags().Changed("max-skills") {
			maxSkills := renderMaxSkills
			cfg.MaxSkills = &maxSkills
		}
		if cmd.Flags().Changed("work-keywords") {
			cfg.WorkKeywords = renderWorkKeywords
		}
		if cmd.Flags().Changed("skill-keywords") {
			cfg.SkillKeywords = renderSkillKeywords
		}
	}
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd, applyRenderFlags(cmd))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.CV == "" {
		return fmt.Errorf("--cv is required (via flag or config)")
	}

	buildCfg, err := cfg.BuildConfig()
	if err != nil {
		return err
	}

	b, err := loadBuilder(cfg.CV)
	if err != nil {
		return fmt.Errorf("failed to load CV: %w", err)
	}
	logger.Debug("loaded CV", zap.String("path", cfg.CV))

	text := b.Build(buildCfg)
	logger.Debug("built resume",
		zap.String("variant", cfg.Variant),
		zap.Stringer("sections", buildCfg.IncludedSections),
		zap.Int("chars", len(text)),
	)

	if cfg.Verbose {
		cv := b.CV()
		printer := verbosePrinter()
		printer.PrintCV(&cv)
		printer.PrintVariant(cfg.Variant, text)
	}

	if renderOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, text)
		return nil
	}

	if err := rendering.WriteText(renderOutput, text); err != nil {
		return fmt.Errorf("failed to write resume: %w", err)
	}
	logger.Info("wrote resume", zap.String("path", renderOutput))
	_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote resume to %s\n", renderOutput)

	return nil
}
