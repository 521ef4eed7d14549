// Package types provides type definitions for structured data used throughout the ats-resume system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CV is the canonical record of a person's professional history.
// Optional scalars are pointers and optional lists are nil when absent.
type CV struct {
	ID           string           `json:"id" validate:"required"`
	Basics       Basics           `json:"basics"`
	Summaries    []Summary        `json:"summaries,omitempty" validate:"omitempty,dive"`
	Skills       []Skill          `json:"skills,omitempty" validate:"omitempty,dive"`
	Publications []Publication    `json:"publications,omitempty" validate:"omitempty,dive"`
	Work         []WorkEntry      `json:"work,omitempty" validate:"omitempty,dive"`
	Education    []EducationEntry `json:"education,omitempty" validate:"omitempty,dive"`
	Volunteer    []VolunteerEntry `json:"volunteer,omitempty" validate:"omitempty,dive"`
}

// Basics holds the contact details rendered in the resume header
type Basics struct {
	ID             *string         `json:"id,omitempty"`
	FirstName      string          `json:"firstName" validate:"required"`
	LastName       string          `json:"lastName" validate:"required"`
	Email          string          `json:"email" validate:"required"`
	Phone          *string         `json:"phone,omitempty"`
	URL            *string         `json:"url,omitempty"`
	Location       Location        `json:"location"`
	SocialProfiles []SocialProfile `json:"socialProfiles,omitempty" validate:"omitempty,dive"`
	Picture        *string         `json:"picture,omitempty"`
	Label          *string         `json:"label,omitempty"`
}

// Location is a postal location; every field is optional
type Location struct {
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	PostalCode  *string `json:"postalCode,omitempty"`
	CountryCode *string `json:"countryCode,omitempty"`
}

// SocialProfile is a link to an account on a social network
type SocialProfile struct {
	ID       *string `json:"id,omitempty"`
	Username string  `json:"username" validate:"required"`
	URL      string  `json:"url" validate:"required"`
	Network  string  `json:"network" validate:"required"`
}

// Summary is one professional summary variant.
// Lower Priority wins when more than one summary matches.
type Summary struct {
	Priority    int      `json:"priority"`
	SummaryType string   `json:"summaryType" validate:"required"`
	Summary     []string `json:"summary"`
}

// Skill is a named skill. Keywords are used for matching only and never rendered.
type Skill struct {
	ID       string   `json:"id" validate:"required"`
	Level    string   `json:"level" validate:"required"`
	Name     string   `json:"name" validate:"required"`
	Keywords []string `json:"keywords,omitempty"`
}

// Publication is a published article, paper or book
type Publication struct {
	ID          string   `json:"id" validate:"required"`
	ReleaseDate string   `json:"releaseDate" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Publisher   *string  `json:"publisher,omitempty"`
	URL         string   `json:"url" validate:"required"`
	Highlights  []string `json:"highlights,omitempty"`
}

// Story is a STAR-style anecdote attached to a position. Stories are never rendered.
type Story struct {
	ID        string   `json:"id" validate:"required"`
	Title     string   `json:"title" validate:"required"`
	Situation *string  `json:"situation,omitempty"`
	Task      *string  `json:"task,omitempty"`
	Action    *string  `json:"action,omitempty"`
	Result    *string  `json:"result,omitempty"`
	Summary   *string  `json:"summary,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Used      *bool    `json:"used,omitempty"`
}

// Position is a role held at an employer
type Position struct {
	ID         string    `json:"id" validate:"required"`
	StartDate  string    `json:"startDate" validate:"required"`
	Position   string    `json:"position" validate:"required"`
	EndDate    *string   `json:"endDate,omitempty"`
	Location   *Location `json:"location,omitempty"` // overrides the employer location
	URL        *string   `json:"url,omitempty"`
	Name       *string   `json:"name,omitempty"`
	Project    *string   `json:"project,omitempty"`
	Highlights []string  `json:"highlights,omitempty"`
	Stories    []Story   `json:"stories,omitempty" validate:"omitempty,dive"`
}

// WorkEntry is an employer. When Positions is non-empty each position renders
// as its own entry; otherwise the employer renders as a single line.
type WorkEntry struct {
	ID        string     `json:"id" validate:"required"`
	Name      string     `json:"name" validate:"required"`
	StartDate string     `json:"startDate" validate:"required"`
	EndDate   *string    `json:"endDate,omitempty"`
	Location  *Location  `json:"location,omitempty"`
	URL       *string    `json:"url,omitempty"`
	Positions []Position `json:"positions,omitempty" validate:"omitempty,dive"`
}

// EducationEntry is a degree or course of study
type EducationEntry struct {
	ID          *string   `json:"id,omitempty"`
	Institution string    `json:"institution" validate:"required"`
	StudyType   string    `json:"studyType" validate:"required"`
	StartDate   string    `json:"startDate" validate:"required"`
	EndDate     string    `json:"endDate" validate:"required"`
	Area        *string   `json:"area,omitempty"`
	GPA         *string   `json:"gpa,omitempty"`
	Courses     []string  `json:"courses,omitempty"`
	Location    *Location `json:"location,omitempty"`
	URL         *string   `json:"url,omitempty"`
}

// VolunteerPosition is a role held at a volunteer organization
type VolunteerPosition struct {
	ID         *string   `json:"id,omitempty"`
	Position   string    `json:"position" validate:"required"`
	StartDate  *string   `json:"startDate,omitempty"`
	EndDate    *string   `json:"endDate,omitempty"`
	Location   *Location `json:"location,omitempty"`
	URL        *string   `json:"url,omitempty"`
	Name       *string   `json:"name,omitempty"`
	Project    *string   `json:"project,omitempty"`
	Highlights []string  `json:"highlights,omitempty"`
}

// VolunteerEntry is a volunteer organization
type VolunteerEntry struct {
	ID           *string             `json:"id,omitempty"`
	Organization string              `json:"organization" validate:"required"`
	Position     *string             `json:"position,omitempty"`
	StartDate    *string             `json:"startDate,omitempty"`
	EndDate      *string             `json:"endDate,omitempty"`
	Location     *Location           `json:"location,omitempty"`
	URL          *string             `json:"url,omitempty"`
	Highlights   []string            `json:"highlights,omitempty"`
	Positions    []VolunteerPosition `json:"positions,omitempty" validate:"omitempty,dive"`
}

// StringPtr returns a pointer to s, for building optional fields in place.
func StringPtr(s string) *string {
	return &s
}
