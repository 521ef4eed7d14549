package builder

import (
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-resume/internal/parsing"
	"github.com/jonathan/ats-resume/internal/rendering"
	"github.com/jonathan/ats-resume/internal/selection"
	"github.com/jonathan/ats-resume/internal/types"
)

// sectionSeparator is placed between rendered sections
const sectionSeparator = "\n\n"

// RenderedSection is the text produced for one included section
type RenderedSection struct {
	Section Section
	Text    string
}

// Builder renders resumes from a single CV. The CV is never modified, so a
// Builder is safe for concurrent use.
type Builder struct {
	cv        types.CV
	formatter rendering.Formatter
}

// New creates a Builder for an in-memory CV
func New(cv types.CV) *Builder {
	return &Builder{
		cv:        cv,
		formatter: rendering.NewFormatter(),
	}
}

// NewFromJSON decodes a CV and creates a Builder for it. A malformed record
// fails here with a *parsing.DecodeError, never later during Build.
func NewFromJSON(data []byte) (*Builder, error) {
	cv, err := parsing.DecodeCV(data)
	if err != nil {
		return nil, err
	}
	return New(*cv), nil
}

// NewFromFile loads a CV file and creates a Builder for it
func NewFromFile(path string) (*Builder, error) {
	cv, err := parsing.LoadCV(path)
	if err != nil {
		return nil, err
	}
	return New(*cv), nil
}

// NewFromReader decodes a CV from r and creates a Builder for it
func NewFromReader(r io.Reader) (*Builder, error) {
	cv, err := parsing.ReadCV(r)
	if err != nil {
		return nil, err
	}
	return New(*cv), nil
}

// CV returns the CV the Builder renders
func (b *Builder) CV() types.CV {
	return b.cv
}

// Build renders the sections included by cfg in canonical order and joins
// them with a blank line. Sections with nothing to render are left out.
func (b *Builder) Build(cfg Config) string {
	sections := b.BuildSections(cfg)

	texts := make([]string, len(sections))
	for i, section := range sections {
		texts[i] = section.Text
	}
	return strings.Join(texts, sectionSeparator)
}

// BuildSections renders each included section that has content
func (b *Builder) BuildSections(cfg Config) []RenderedSection {
	var out []RenderedSection
	for _, section := range cfg.IncludedSections.Sections() {
		if text, ok := b.renderSection(section, cfg); ok {
			out = append(out, RenderedSection{Section: section, Text: text})
		}
	}
	return out
}

func (b *Builder) renderSection(section Section, cfg Config) (string, bool) {
	switch section {
	case SectionHeader:
		return b.formatter.FormatHeader(b.cv.Basics), true
	case SectionSummary:
		return b.formatter.FormatSummary(b.cv.Summaries, cfg.SummaryType)
	case SectionWork:
		work := selection.FilterWork(b.cv.Work, cfg.WorkKeywords, cfg.MaxWorkEntries)
		return b.formatter.FormatWorkExperience(work)
	case SectionEducation:
		return b.formatter.FormatEducation(b.cv.Education)
	case SectionSkills:
		skills := selection.FilterSkills(b.cv.Skills, cfg.SkillKeywords, cfg.MaxSkills)
		return b.formatter.FormatSkills(skills)
	case SectionVolunteer:
		return b.formatter.FormatVolunteerExperience(b.cv.Volunteer)
	case SectionPublications:
		return b.formatter.FormatPublications(b.cv.Publications)
	default:
		return "", false
	}
}

// BuildVariants renders every preset and returns the documents keyed by
// variant name. The result always holds exactly the VariantNames keys.
func (b *Builder) BuildVariants() map[string]string {
	names := VariantNames()
	docs := make([]string, len(names))

	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			cfg, _ := Preset(name)
			docs[i] = b.Build(cfg)
			return nil
		})
	}
	_ = g.Wait() // builds never fail

	variants := make(map[string]string, len(names))
	for i, name := range names {
		variants[name] = docs[i]
	}
	return variants
}
