// Package builder assembles plain-text resumes from a CV according to a Config.
package builder

import (
	"fmt"
	"strings"
)

// Section identifies a block of the rendered resume
type Section uint8

// Sections in canonical rendering order
const (
	SectionHeader Section = iota
	SectionSummary
	SectionWork
	SectionEducation
	SectionSkills
	SectionVolunteer
	SectionPublications
)

var sectionNames = [...]string{
	SectionHeader:       "header",
	SectionSummary:      "summary",
	SectionWork:         "work",
	SectionEducation:    "education",
	SectionSkills:       "skills",
	SectionVolunteer:    "volunteer",
	SectionPublications: "publications",
}

// AllSections returns every section in canonical order
func AllSections() []Section {
	return []Section{
		SectionHeader,
		SectionSummary,
		SectionWork,
		SectionEducation,
		SectionSkills,
		SectionVolunteer,
		SectionPublications,
	}
}

func (s Section) String() string {
	if int(s) < len(sectionNames) {
		return sectionNames[s]
	}
	return fmt.Sprintf("section(%d)", uint8(s))
}

// ParseSection maps a section tag such as "work" to its Section, ignoring case
func ParseSection(tag string) (Section, error) {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	for i, name := range sectionNames {
		if name == normalized {
			return Section(i), nil
		}
	}
	return 0, fmt.Errorf("unknown section %q (valid: %s)", tag, strings.Join(sectionNames[:], ", "))
}

// SectionSet is an immutable set of sections. The zero value is empty.
type SectionSet uint8

// NewSectionSet returns a set holding the given sections
func NewSectionSet(sections ...Section) SectionSet {
	var set SectionSet
	for _, s := range sections {
		set = set.With(s)
	}
	return set
}

// AllSectionSet returns the set of every section
func AllSectionSet() SectionSet {
	return NewSectionSet(AllSections()...)
}

// ParseSectionSet parses a list of section tags into a set
func ParseSectionSet(tags []string) (SectionSet, error) {
	var set SectionSet
	for _, tag := range tags {
		s, err := ParseSection(tag)
		if err != nil {
			return 0, err
		}
		set = set.With(s)
	}
	return set, nil
}

// With returns a copy of the set that also holds s
func (set SectionSet) With(s Section) SectionSet {
	return set | 1<<s
}

// Without returns a copy of the set that no longer holds s
func (set SectionSet) Without(s Section) SectionSet {
	return set &^ (1 << s)
}

// Has reports whether s is in the set
func (set SectionSet) Has(s Section) bool {
	return set&(1<<s) != 0
}

// Sections returns the members in canonical order, regardless of how the set was built
func (set SectionSet) Sections() []Section {
	var out []Section
	for _, s := range AllSections() {
		if set.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

func (set SectionSet) String() string {
	names := make([]string, 0, len(sectionNames))
	for _, s := range set.Sections() {
		names = append(names, s.String())
	}
	return strings.Join(names, ",")
}
