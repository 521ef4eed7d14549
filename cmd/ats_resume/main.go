// Package main provides the entry point for the ats_resume CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_resume",
	Short: "ATS-friendly plain-text resume generator",
	Long: `ats_resume renders plain-text resumes that applicant tracking systems can parse,
from a single structured CV record. Variants (default, technical, management)
select summaries, filter positions and skills by keyword, and cap section sizes.

Configuration can be loaded from a JSON or YAML file using --config or the
ATS_RESUME_CONFIG environment variable. Command-line flags override config file values.`,
	SilenceUsage: true,
}

var (
	rootConfigPath string
	rootLogLevel   string
	rootLogFormat  string
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to config file (.json, .yaml or .yml)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&rootLogFormat, "log-format", "", "Log format: console or json")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed summaries of the CV and built resumes")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
