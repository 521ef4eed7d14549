package validation

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/ats-resume/internal/rendering"
	"github.com/jonathan/ats-resume/internal/types"
)

// DefaultMaxLineChars is the line length most ATS parsers handle without wrapping
const DefaultMaxLineChars = 100

const severityWarning = "warning"

// Options controls which checks run
type Options struct {
	// MaxLineChars is the longest allowed line in runes. Zero disables the check.
	MaxLineChars     int
	// ForbiddenPhrases are matched case-insensitively; one violation per line
	ForbiddenPhrases []string
}

// DefaultOptions returns the recommended lint options
func DefaultOptions() Options {
	return Options{MaxLineChars: DefaultMaxLineChars}
}

var sectionHeaders = map[string]bool{
	rendering.HeaderSummary:      true,
	rendering.HeaderWork:         true,
	rendering.HeaderEducation:    true,
	rendering.HeaderSkills:       true,
	rendering.HeaderVolunteer:    true,
	rendering.HeaderPublications: true,
}

// CheckText lints rendered resume text. Each violation records the section
// header the offending line falls under, when there is one.
func CheckText(text string, opts Options) []types.Violation {
	violations, _ := check(strings.NewReader(text), opts)
	return violations
}

// CheckFile lints a rendered resume file
func CheckFile(path string, opts Options) ([]types.Violation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileReadError{
			Message: fmt.Sprintf("failed to open resume file: %s", path),
			Cause:   err,
		}
	}
	defer func() { _ = file.Close() }()

	violations, err := check(file, opts)
	if err != nil {
		return nil, &FileReadError{
			Message: "failed to read resume file",
			Cause:   err,
		}
	}
	return violations, nil
}

func check(r io.Reader, opts Options) ([]types.Violation, error) {
	var violations []types.Violation
	var section *string
	phrases := normalizePhrases(opts.ForbiddenPhrases)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if sectionHeaders[line] {
			header := line
			section = &header
		}

		if v, ok := checkLineLength(line, lineNum, opts.MaxLineChars); ok {
			v.Section = section
			violations = append(violations, v)
		}
		if v, ok := checkPlainText(line, lineNum); ok {
			v.Section = section
			violations = append(violations, v)
		}
		if v, ok := checkForbiddenPhrases(line, lineNum, phrases); ok {
			v.Section = section
			violations = append(violations, v)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return violations, nil
}

// intPtr returns a pointer to an integer
func intPtr(i int) *int {
	return &i
}
