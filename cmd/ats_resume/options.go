package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jonathan/ats-resume/internal/builder"
	"github.com/jonathan/ats-resume/internal/config"
	"github.com/jonathan/ats-resume/internal/observability"
	"github.com/jonathan/ats-resume/internal/parsing"
	"github.com/jonathan/ats-resume/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configEnvVar names the environment variable holding the default config path
const configEnvVar = "ATS_RESUME_CONFIG"

// defaultMaxLineChars is the lint line limit when neither the config file nor flags set one
const defaultMaxLineChars = 100

// configDefaults fill values neither the config file nor flags provide
var configDefaults = config.Config{
	OutDir:       "output",
	Variant:      "default",
	MaxLineChars: intPtr(defaultMaxLineChars),
	LogLevel:     "info",
	LogFormat:    "console",
}

// stdin is where a "-" cv path reads from
var stdin io.Reader = os.Stdin

// resolveConfigPath prefers --config over the environment variable
func resolveConfigPath() string {
	if rootConfigPath != "" {
		return rootConfigPath
	}
	return os.Getenv(configEnvVar)
}

// loadConfig loads the config file if one is configured and applies the
// persistent flag overrides. Command-specific flags are applied by the caller.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config

	path := resolveConfigPath()
	if path != "" {
		loadedCfg, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = rootLogLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = rootLogFormat
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = rootVerbose
	}

	return cfg, nil
}

// finalizeConfig applies defaults, normalizes keyword lists and validates the result
func finalizeConfig(cfg config.Config) (config.Config, error) {
	cfg = cfg.MergeWithDefaults(configDefaults)
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the command logger from the resolved config
func newLogger(cfg config.Config) (*zap.Logger, error) {
	logger, err := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// setup resolves the config for a command and returns it with a logger.
// apply copies command-specific flags onto the config before defaults are merged.
func setup(cmd *cobra.Command, apply func(*config.Config)) (config.Config, *zap.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return config.Config{}, nil, err
	}
	if apply != nil {
		apply(&cfg)
	}

	cfg, err = finalizeConfig(cfg)
	if err != nil {
		return config.Config{}, nil, err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return config.Config{}, nil, err
	}

	if path := resolveConfigPath(); path != "" {
		logger.Debug("loaded config", zap.String("path", path))
	}

	return cfg, logger, nil
}

// verbosePrinter writes to stderr so it never mixes with a resume on stdout
func verbosePrinter() *observability.Printer {
	return observability.NewPrinter(os.Stderr)
}

// loadCV decodes the CV at path, or from stdin when path is "-"
func loadCV(path string) (*types.CV, error) {
	if path == config.StdinPath {
		return parsing.ReadCV(stdin)
	}
	return parsing.LoadCV(path)
}

// loadBuilder creates a Builder for the CV at path, or from stdin when path is "-"
func loadBuilder(path string) (*builder.Builder, error) {
	if path == config.StdinPath {
		return builder.NewFromReader(stdin)
	}
	return builder.NewFromFile(path)
}

// intPtr returns a pointer to an integer
func intPtr(i int) *int {
	return &i
}
