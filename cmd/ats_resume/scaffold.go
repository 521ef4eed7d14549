package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/ats-resume/internal/parsing"
	"github.com/jonathan/ats-resume/internal/rendering"
	"github.com/jonathan/ats-resume/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Write a starter CV JSON file",
	Long: `Writes a starter CV JSON file with every section filled in with placeholder
content and fresh ids. Edit it, then check it with the validate command.`,
	RunE: runScaffold,
}

var (
	scaffoldOutput    string
	scaffoldFirstName string
	scaffoldLastName  string
	scaffoldEmail     string
	scaffoldForce     bool
)

func init() {
	scaffoldCmd.Flags().StringVarP(&scaffoldOutput, "out", "o", "", "Path to output CV JSON file (required)")
	scaffoldCmd.Flags().StringVar(&scaffoldFirstName, "first-name", "First", "First name")
	scaffoldCmd.Flags().StringVar(&scaffoldLastName, "last-name", "Last", "Last name")
	scaffoldCmd.Flags().StringVar(&scaffoldEmail, "email", "email@example.com", "Email address")
	scaffoldCmd.Flags().BoolVar(&scaffoldForce, "force", false, "Overwrite an existing file")

	if err := scaffoldCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(scaffoldCmd)
}

func runScaffold(cmd *cobra.Command, _ []string) error {
	_, logger, err := setup(cmd, nil)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if !scaffoldForce {
		if _, err := os.Stat(scaffoldOutput); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", scaffoldOutput)
		}
	}

	jsonBytes, err := scaffoldJSON(scaffoldFirstName, scaffoldLastName, scaffoldEmail)
	if err != nil {
		return err
	}

	if err := rendering.WriteText(scaffoldOutput, string(jsonBytes)+"\n"); err != nil {
		return fmt.Errorf("failed to write CV: %w", err)
	}

	logger.Info("wrote CV template", zap.String("path", scaffoldOutput))
	_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote CV template to %s\n", scaffoldOutput)
	return nil
}

// scaffoldJSON marshals a starter CV and checks that it decodes
func scaffoldJSON(firstName, lastName, email string) ([]byte, error) {
	cv := scaffoldCV(firstName, lastName, email)

	jsonBytes, err := json.MarshalIndent(cv, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal CV to JSON: %w", err)
	}

	if _, err := parsing.DecodeCV(jsonBytes); err != nil {
		return nil, fmt.Errorf("generated CV does not decode: %w", err)
	}

	return jsonBytes, nil
}

// scaffoldCV builds a starter CV with one entry per section
func scaffoldCV(firstName, lastName, email string) types.CV {
	s := types.StringPtr

	return types.CV{
		ID: uuid.NewString(),
		Basics: types.Basics{
			FirstName: firstName,
			LastName:  lastName,
			Email:     email,
			Phone:     s("(555) 010-0100"),
			Location:  types.Location{City: s("City"), State: s("ST")},
			SocialProfiles: []types.SocialProfile{
				{Username: "username", URL: "https://linkedin.com/in/username", Network: "LinkedIn"},
			},
		},
		Summaries: []types.Summary{
			{Priority: 1, SummaryType: "general", Summary: []string{"One or two sentences about your experience."}},
			{Priority: 1, SummaryType: "technical", Summary: []string{"A summary for engineering roles."}},
			{Priority: 1, SummaryType: "management", Summary: []string{"A summary for management roles."}},
		},
		Skills: []types.Skill{
			{ID: uuid.NewString(), Level: "Expert", Name: "Skill", Keywords: []string{"keyword"}},
		},
		Work: []types.WorkEntry{
			{
				ID:        uuid.NewString(),
				Name:      "Company",
				StartDate: "January 2020",
				Location:  &types.Location{City: s("City"), State: s("ST")},
				Positions: []types.Position{
					{
						ID:         uuid.NewString(),
						StartDate:  "January 2020",
						Position:   "Software Engineer",
						Highlights: []string{"An accomplishment with a measurable result"},
					},
				},
			},
		},
		Education: []types.EducationEntry{
			{
				Institution: "University",
				StudyType:   "Bachelor of Science",
				Area:        s("Computer Science"),
				StartDate:   "September 2012",
				EndDate:     "May 2016",
			},
		},
	}
}
