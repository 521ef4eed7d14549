package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_AllSectionsNoLimits(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, AllSectionSet(), cfg.IncludedSections)
	assert.Nil(t, cfg.SummaryType)
	assert.Nil(t, cfg.MaxWorkEntries)
	assert.Nil(t, cfg.MaxSkills)
	assert.Nil(t, cfg.WorkKeywords)
	assert.Nil(t, cfg.SkillKeywords)
}

func TestTechnicalConfig(t *testing.T) {
	cfg := TechnicalConfig()

	require.NotNil(t, cfg.SummaryType)
	assert.Equal(t, "technical", *cfg.SummaryType)
	assert.Equal(t, NewSectionSet(SectionHeader, SectionSummary, SectionWork, SectionEducation, SectionSkills), cfg.IncludedSections)
	assert.False(t, cfg.IncludedSections.Has(SectionVolunteer))
	assert.False(t, cfg.IncludedSections.Has(SectionPublications))
	assert.Equal(t, []string{"engineering", "developer", "architect", "technical", "software"}, cfg.WorkKeywords)
	assert.Nil(t, cfg.SkillKeywords)
}

func TestManagementConfig(t *testing.T) {
	cfg := ManagementConfig()

	require.NotNil(t, cfg.SummaryType)
	assert.Equal(t, "management", *cfg.SummaryType)
	assert.True(t, cfg.IncludedSections.Has(SectionHeader))
	assert.False(t, cfg.IncludedSections.Has(SectionPublications))
	assert.Equal(t, []string{"manager", "lead", "director", "strategy", "team"}, cfg.WorkKeywords)
}

func TestPreset_ReturnsIndependentCopies(t *testing.T) {
	first, ok := Preset(VariantTechnical)
	require.True(t, ok)
	first.WorkKeywords[0] = "changed"

	second, _ := Preset(VariantTechnical)
	assert.Equal(t, "engineering", second.WorkKeywords[0])
}

func TestPreset_Unknown(t *testing.T) {
	_, ok := Preset("executive")
	assert.False(t, ok)
}

func TestVariantNames(t *testing.T) {
	assert.Equal(t, []string{"default", "technical", "management"}, VariantNames())
}
