package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jonathan/ats-resume/internal/types"
)

// emDash separates titles from organizations in rendered entries
const emDash = '—'

// isPlain reports whether r is safe for ATS parsers: printable Latin-1 or the em dash
func isPlain(r rune) bool {
	if r == emDash {
		return true
	}
	if r == '\t' || unicode.IsControl(r) {
		return false
	}
	return r <= unicode.MaxLatin1
}

func checkPlainText(line string, lineNum int) (types.Violation, bool) {
	var found []string
	seen := make(map[rune]bool)
	for _, r := range line {
		if isPlain(r) || seen[r] {
			continue
		}
		seen[r] = true
		found = append(found, fmt.Sprintf("%U", r))
	}

	if len(found) == 0 {
		return types.Violation{}, false
	}

	return types.Violation{
		Type:       types.ViolationNonPlainCharacter,
		Severity:   severityWarning,
		Details:    fmt.Sprintf("Line %d contains characters ATS parsers may drop: %s", lineNum, strings.Join(found, ", ")),
		LineNumber: intPtr(lineNum),
	}, true
}
