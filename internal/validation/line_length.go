package validation

import (
	"fmt"
	"unicode/utf8"

	"github.com/jonathan/ats-resume/internal/types"
)

func checkLineLength(line string, lineNum, maxChars int) (types.Violation, bool) {
	if maxChars <= 0 {
		return types.Violation{}, false
	}

	count := utf8.RuneCountInString(line)
	if count <= maxChars {
		return types.Violation{}, false
	}

	return types.Violation{
		Type:       types.ViolationLineTooLong,
		Severity:   severityWarning,
		Details:    fmt.Sprintf("Line %d has %d characters, maximum is %d", lineNum, count, maxChars),
		LineNumber: intPtr(lineNum),
		CharCount:  intPtr(count),
	}, true
}
