package builder

// Variant names produced by BuildVariants
const (
	VariantDefault    = "default"
	VariantTechnical  = "technical"
	VariantManagement = "management"
)

// Config selects and filters the sections of a built resume.
// Nil pointers and nil keyword lists mean "no restriction".
type Config struct {
	SummaryType      *string
	IncludedSections SectionSet
	MaxWorkEntries   *int
	MaxSkills        *int
	WorkKeywords     []string
	SkillKeywords    []string
}

// NewConfig returns a configuration that includes every section with no filtering
func NewConfig() Config {
	return Config{IncludedSections: AllSectionSet()}
}

// DefaultConfig is the general-purpose preset
func DefaultConfig() Config {
	return NewConfig()
}

// TechnicalConfig is the preset for engineering roles
func TechnicalConfig() Config {
	summaryType := "technical"
	return Config{
		SummaryType:      &summaryType,
		IncludedSections: NewSectionSet(SectionHeader, SectionSummary, SectionWork, SectionSkills, SectionEducation),
		WorkKeywords:     []string{"engineering", "developer", "architect", "technical", "software"},
	}
}

// ManagementConfig is the preset for management roles
func ManagementConfig() Config {
	summaryType := "management"
	return Config{
		SummaryType:      &summaryType,
		IncludedSections: NewSectionSet(SectionHeader, SectionSummary, SectionWork, SectionEducation, SectionSkills),
		WorkKeywords:     []string{"manager", "lead", "director", "strategy", "team"},
	}
}

// VariantNames returns the preset names in a stable order
func VariantNames() []string {
	return []string{VariantDefault, VariantTechnical, VariantManagement}
}

// Preset returns a fresh copy of the named preset configuration
func Preset(name string) (Config, bool) {
	switch name {
	case VariantDefault:
		return DefaultConfig(), true
	case VariantTechnical:
		return TechnicalConfig(), true
	case VariantManagement:
		return ManagementConfig(), true
	default:
		return Config{}, false
	}
}
