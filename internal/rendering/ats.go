// Package rendering turns CV records into ATS-safe plain-text resume sections.
package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-resume/internal/types"
)

// Section headers
const (
	HeaderSummary      = "PROFESSIONAL SUMMARY"
	HeaderWork         = "WORK EXPERIENCE"
	HeaderEducation    = "EDUCATION"
	HeaderSkills       = "SKILLS"
	HeaderVolunteer    = "VOLUNTEER EXPERIENCE"
	HeaderPublications = "PUBLICATIONS"
)

// Present is rendered in place of a missing end date
const Present = "Present"

// entrySeparator joins an entry title to its organization
const entrySeparator = " — "

// Formatter renders CV substructures as plain text. It holds no state and is
// safe for concurrent use. Each section method reports false when there is
// nothing to render so the caller can omit the section entirely.
type Formatter struct{}

// NewFormatter creates a Formatter
func NewFormatter() Formatter {
	return Formatter{}
}

// FormatLocation joins the city and state that are present with ", ".
func (Formatter) FormatLocation(location *types.Location) (string, bool) {
	if location == nil {
		return "", false
	}

	parts := make([]string, 0, 2)
	if location.City != nil {
		parts = append(parts, *location.City)
	}
	if location.State != nil {
		parts = append(parts, *location.State)
	}

	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ", "), true
}

// FormatDateRange renders "<start> - <end>", using Present for an open range.
func (Formatter) FormatDateRange(startDate string, endDate *string) string {
	end := Present
	if endDate != nil {
		end = *endDate
	}
	return startDate + " - " + end
}

// FormatHeader renders the name line followed by phone, email and LinkedIn URL,
// one per line.
func (Formatter) FormatHeader(basics types.Basics) string {
	contact := make([]string, 0, 3)
	if basics.Phone != nil {
		contact = append(contact, *basics.Phone)
	}
	contact = append(contact, basics.Email)

	if profile, ok := linkedInProfile(basics.SocialProfiles); ok {
		contact = append(contact, profile.URL)
	}

	return basics.FirstName + " " + basics.LastName + "\n" + strings.Join(contact, "\n")
}

func linkedInProfile(profiles []types.SocialProfile) (types.SocialProfile, bool) {
	for _, profile := range profiles {
		if strings.ToLower(profile.Network) == "linkedin" {
			return profile, true
		}
	}
	return types.SocialProfile{}, false
}

// FormatSummary picks the lowest-priority summary, restricted to summaryType
// when one is given. Ties keep the earliest summary in list order.
func (Formatter) FormatSummary(summaries []types.Summary, summaryType *string) (string, bool) {
	var selected *types.Summary
	for i := range summaries {
		summary := &summaries[i]
		if summaryType != nil && summary.SummaryType != *summaryType {
			continue
		}
		if selected == nil || summary.Priority < selected.Priority {
			selected = summary
		}
	}

	if selected == nil {
		return "", false
	}
	return HeaderSummary + "\n" + strings.Join(selected.Summary, " "), true
}

// FormatWorkExperience renders one block per position, or one line per employer
// that lists no positions.
func (f Formatter) FormatWorkExperience(work []types.WorkEntry) (string, bool) {
	if len(work) == 0 {
		return "", false
	}

	var sb strings.Builder
	sb.WriteString(HeaderWork + "\n")

	for _, company := range work {
		if len(company.Positions) == 0 {
			fmt.Fprintf(&sb, "%s%s (%s)\n\n",
				company.Name,
				f.locationSuffix(company.Location),
				f.FormatDateRange(company.StartDate, company.EndDate))
			continue
		}

		for _, position := range company.Positions {
			location := position.Location
			if location == nil {
				location = company.Location
			}

			fmt.Fprintf(&sb, "%s%s%s%s (%s)\n",
				position.Position,
				entrySeparator,
				company.Name,
				f.locationSuffix(location),
				f.FormatDateRange(position.StartDate, position.EndDate))
			writeBullets(&sb, position.Highlights)
			sb.WriteString("\n")
		}
	}

	return strings.TrimSpace(sb.String()), true
}

// FormatEducation renders one degree line per entry plus optional coursework.
func (f Formatter) FormatEducation(education []types.EducationEntry) (string, bool) {
	if len(education) == 0 {
		return "", false
	}

	var sb strings.Builder
	sb.WriteString(HeaderEducation + "\n")

	for _, entry := range education {
		sb.WriteString(entry.StudyType)
		if entry.Area != nil {
			sb.WriteString(" in " + *entry.Area)
		}
		fmt.Fprintf(&sb, "%s%s%s (%s)",
			entrySeparator,
			entry.Institution,
			f.locationSuffix(entry.Location),
			f.FormatDateRange(entry.StartDate, &entry.EndDate))
		if entry.GPA != nil {
			sb.WriteString(" | GPA: " + *entry.GPA)
		}
		sb.WriteString("\n")

		if len(entry.Courses) > 0 {
			sb.WriteString("Relevant Coursework: " + strings.Join(entry.Courses, ", ") + "\n")
		}
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String()), true
}

// FormatSkills renders skill names comma-joined in list order.
func (Formatter) FormatSkills(skills []types.Skill) (string, bool) {
	if len(skills) == 0 {
		return "", false
	}

	names := make([]string, len(skills))
	for i, skill := range skills {
		names[i] = skill.Name
	}
	return HeaderSkills + "\n" + strings.Join(names, ", "), true
}

// FormatVolunteerExperience mirrors FormatWorkExperience. Dates and the position
// title are optional, and a date range is only shown when a start date is set.
func (f Formatter) FormatVolunteerExperience(volunteer []types.VolunteerEntry) (string, bool) {
	if len(volunteer) == 0 {
		return "", false
	}

	var sb strings.Builder
	sb.WriteString(HeaderVolunteer + "\n")

	for _, entry := range volunteer {
		if len(entry.Positions) == 0 {
			if entry.Position != nil {
				sb.WriteString(*entry.Position + entrySeparator)
			}
			fmt.Fprintf(&sb, "%s%s%s\n",
				entry.Organization,
				f.locationSuffix(entry.Location),
				f.optionalDateRange(entry.StartDate, entry.EndDate))
			writeBullets(&sb, entry.Highlights)
			sb.WriteString("\n")
			continue
		}

		for _, position := range entry.Positions {
			location := position.Location
			if location == nil {
				location = entry.Location
			}

			fmt.Fprintf(&sb, "%s%s%s%s%s\n",
				position.Position,
				entrySeparator,
				entry.Organization,
				f.locationSuffix(location),
				f.optionalDateRange(position.StartDate, position.EndDate))
			writeBullets(&sb, position.Highlights)
			sb.WriteString("\n")
		}
	}

	return strings.TrimSpace(sb.String()), true
}

// FormatPublications renders "<name>[, publisher] (<releaseDate>)" plus highlights.
func (Formatter) FormatPublications(publications []types.Publication) (string, bool) {
	if len(publications) == 0 {
		return "", false
	}

	var sb strings.Builder
	sb.WriteString(HeaderPublications + "\n")

	for _, pub := range publications {
		sb.WriteString(pub.Name)
		if pub.Publisher != nil {
			sb.WriteString(", " + *pub.Publisher)
		}
		sb.WriteString(" (" + pub.ReleaseDate + ")\n")
		writeBullets(&sb, pub.Highlights)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String()), true
}

func (f Formatter) locationSuffix(location *types.Location) string {
	if formatted, ok := f.FormatLocation(location); ok {
		return ", " + formatted
	}
	return ""
}

func (f Formatter) optionalDateRange(startDate, endDate *string) string {
	if startDate == nil {
		return ""
	}
	return " (" + f.FormatDateRange(*startDate, endDate) + ")"
}

func writeBullets(sb *strings.Builder, highlights []string) {
	for _, highlight := range highlights {
		sb.WriteString("- " + highlight + "\n")
	}
}
