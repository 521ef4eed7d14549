// Package selection filters CV collections down to the entries a resume variant shows.
package selection

import (
	"strings"

	"github.com/jonathan/ats-resume/internal/types"
)

// MatchesKeywords reports whether any text contains any keyword,
// case-insensitively. Matching is plain substring containment.
func MatchesKeywords(keywords []string, texts []string) bool {
	lowered := make([]string, len(texts))
	for i, text := range texts {
		lowered[i] = strings.ToLower(text)
	}

	for _, keyword := range keywords {
		k := strings.ToLower(keyword)
		for _, text := range lowered {
			if strings.Contains(text, k) {
				return true
			}
		}
	}
	return false
}

// FilterWork keeps positions whose title or highlights match a keyword, drops
// employers left with no positions, then caps the result at maxEntries.
// Employers without positions are never keyword-filtered. The input is not
// modified. A nil result means there is nothing to render.
func FilterWork(work []types.WorkEntry, keywords []string, maxEntries *int) []types.WorkEntry {
	if work == nil {
		return nil
	}

	filtered := make([]types.WorkEntry, 0, len(work))
	for _, entry := range work {
		if len(keywords) == 0 || entry.Positions == nil {
			filtered = append(filtered, entry)
			continue
		}

		positions := make([]types.Position, 0, len(entry.Positions))
		for _, position := range entry.Positions {
			texts := append([]string{position.Position}, position.Highlights...)
			if MatchesKeywords(keywords, texts) {
				positions = append(positions, position)
			}
		}
		if len(positions) == 0 {
			continue
		}

		entry.Positions = positions
		filtered = append(filtered, entry)
	}

	filtered = capEntries(filtered, maxEntries)
	if len(filtered) == 0 {
		return nil
	}
	return filtered
}

// FilterSkills keeps skills whose name or own keywords match a keyword, then
// caps the result at maxSkills. A nil result means there is nothing to render.
func FilterSkills(skills []types.Skill, keywords []string, maxSkills *int) []types.Skill {
	if skills == nil {
		return nil
	}

	filtered := make([]types.Skill, 0, len(skills))
	for _, skill := range skills {
		if len(keywords) > 0 {
			texts := append([]string{skill.Name}, skill.Keywords...)
			if !MatchesKeywords(keywords, texts) {
				continue
			}
		}
		filtered = append(filtered, skill)
	}

	filtered = capEntries(filtered, maxSkills)
	if len(filtered) == 0 {
		return nil
	}
	return filtered
}

// capEntries keeps the first limit items. A negative limit keeps none.
func capEntries[T any](items []T, limit *int) []T {
	if limit == nil || len(items) <= *limit {
		return items
	}
	return items[:max(*limit, 0)]
}
