// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/ats-resume/internal/builder"
)

// StdinPath as the cv path reads the CV from standard input
const StdinPath = "-"

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	CV     string `json:"cv,omitempty" yaml:"cv,omitempty"`           // Path to CV JSON file, or "-" for stdin
	OutDir string `json:"out_dir,omitempty" yaml:"out_dir,omitempty"` // Directory for exported variants

	// Resume selection
	Variant        string   `json:"variant,omitempty" yaml:"variant,omitempty"`                   // Preset to start from
	SummaryType    string   `json:"summary_type,omitempty" yaml:"summary_type,omitempty"`         // Overrides the preset summary type
	Sections       []string `json:"sections,omitempty" yaml:"sections,omitempty"`                 // Overrides the preset sections
	MaxWorkEntries *int     `json:"max_work_entries,omitempty" yaml:"max_work_entries,omitempty"` // Cap on rendered employers
	MaxSkills      *int     `json:"max_skills,omitempty" yaml:"max_skills,omitempty"`             // Cap on rendered skills
	WorkKeywords   []string `json:"work_keywords,omitempty" yaml:"work_keywords,omitempty"`       // Position filter keywords
	SkillKeywords  []string `json:"skill_keywords,omitempty" yaml:"skill_keywords,omitempty"`     // Skill filter keywords

	// Lint
	MaxLineChars     *int     `json:"max_line_chars,omitempty" yaml:"max_line_chars,omitempty"`       // Longest line the lint accepts, 0 disables
	ForbiddenPhrases []string `json:"forbidden_phrases,omitempty" yaml:"forbidden_phrases,omitempty"` // Phrases the lint rejects

	// Behavior
	LogLevel  string `json:"log_level,omitempty" yaml:"log_level,omitempty"`   // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty" yaml:"log_format,omitempty"` // console or json
	Verbose   bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`       // Print variant summaries
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Variant != "" {
		if _, ok := builder.Preset(c.Variant); !ok {
			return fmt.Errorf("config error: unknown variant %q (valid: %s)", c.Variant, strings.Join(builder.VariantNames(), ", "))
		}
	}

	if _, err := builder.ParseSectionSet(c.Sections); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Validate numeric ranges
	if c.MaxWorkEntries != nil && *c.MaxWorkEntries < 0 {
		return fmt.Errorf("config error: 'max_work_entries' must be non-negative")
	}
	if c.MaxSkills != nil && *c.MaxSkills < 0 {
		return fmt.Errorf("config error: 'max_skills' must be non-negative")
	}
	if c.MaxLineChars != nil && *c.MaxLineChars < 0 {
		return fmt.Errorf("config error: 'max_line_chars' must be non-negative")
	}

	switch c.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("config error: 'log_format' must be console or json")
	}

	if c.CV != "" && c.CV != StdinPath {
		if _, err := os.Stat(c.CV); os.IsNotExist(err) {
			return fmt.Errorf("config error: cv file not found: %s", c.CV)
		}
	}

	return nil
}

// Normalize returns a copy with keyword lists trimmed and deduplicated
// case-insensitively, keeping first occurrences in order.
func (c *Config) Normalize() Config {
	result := *c
	result.WorkKeywords = normalizeKeywords(c.WorkKeywords)
	result.SkillKeywords = normalizeKeywords(c.SkillKeywords)
	return result
}

func normalizeKeywords(keywords []string) []string {
	if keywords == nil {
		return nil
	}

	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" {
			continue
		}
		key := strings.ToLower(keyword)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, keyword)
	}
	return out
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.CV == "" {
		result.CV = defaults.CV
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Variant == "" {
		result.Variant = defaults.Variant
	}
	if result.SummaryType == "" {
		result.SummaryType = defaults.SummaryType
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// List and pointer fields: use default if unset
	if result.Sections == nil {
		result.Sections = defaults.Sections
	}
	if result.WorkKeywords == nil {
		result.WorkKeywords = defaults.WorkKeywords
	}
	if result.SkillKeywords == nil {
		result.SkillKeywords = defaults.SkillKeywords
	}
	if result.ForbiddenPhrases == nil {
		result.ForbiddenPhrases = defaults.ForbiddenPhrases
	}
	if result.MaxWorkEntries == nil {
		result.MaxWorkEntries = defaults.MaxWorkEntries
	}
	if result.MaxSkills == nil {
		result.MaxSkills = defaults.MaxSkills
	}
	if result.MaxLineChars == nil {
		result.MaxLineChars = defaults.MaxLineChars
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// BuildConfig turns the CLI configuration into a builder configuration.
// The variant preset is the starting point and explicit fields override it.
func (c *Config) BuildConfig() (builder.Config, error) {
	variant := c.Variant
	if variant == "" {
		variant = builder.VariantDefault
	}

	cfg, ok := builder.Preset(variant)
	if !ok {
		return builder.Config{}, fmt.Errorf("unknown variant %q", variant)
	}

	if c.SummaryType != "" {
		summaryType := c.SummaryType
		cfg.SummaryType = &summaryType
	}
	if len(c.Sections) > 0 {
		sections, err := builder.ParseSectionSet(c.Sections)
		if err != nil {
			return builder.Config{}, err
		}
		cfg.IncludedSections = sections
	}
	if c.MaxWorkEntries != nil {
		maxWork := *c.MaxWorkEntries
		cfg.MaxWorkEntries = &maxWork
	}
	if c.MaxSkills != nil {
		maxSkills := *c.MaxSkills
		cfg.MaxSkills = &maxSkills
	}
	// A non-nil empty list clears the preset filter
	if c.WorkKeywords != nil {
		cfg.WorkKeywords = append([]string{}, c.WorkKeywords...)
	}
	if c.SkillKeywords != nil {
		cfg.SkillKeywords = append([]string{}, c.SkillKeywords...)
	}

	return cfg, nil
}
