package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-resume/internal/types"
)

const severityError = "error"

// normalizePhrases lowercases and trims phrases, dropping empty ones
func normalizePhrases(phrases []string) []string {
	normalized := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase != "" {
			normalized = append(normalized, phrase)
		}
	}
	return normalized
}

// checkForbiddenPhrases reports the first forbidden phrase on a line, ignoring case.
// phrases must already be normalized.
func checkForbiddenPhrases(line string, lineNum int, phrases []string) (types.Violation, bool) {
	if len(phrases) == 0 {
		return types.Violation{}, false
	}

	lowered := strings.ToLower(line)
	for _, phrase := range phrases {
		if strings.Contains(lowered, phrase) {
			return types.Violation{
				Type:       types.ViolationForbiddenPhrase,
				Severity:   severityError,
				Details:    fmt.Sprintf("Line %d contains forbidden phrase: %s", lineNum, phrase),
				LineNumber: intPtr(lineNum),
			}, true
		}
	}
	return types.Violation{}, false
}
