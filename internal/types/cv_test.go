package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalCV() *CV {
	return &CV{
		ID: "cv_001",
		Basics: Basics{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane.doe@example.com",
			Location:  Location{City: StringPtr("Boston")},
		},
	}
}

func TestCV_UnmarshalOptionalFieldsAbsent(t *testing.T) {
	data := `{
		"id": "1",
		"basics": {
			"firstName": "Jane",
			"lastName": "Doe",
			"email": "jane@example.com",
			"location": {}
		}
	}`

	var cv CV
	require.NoError(t, json.Unmarshal([]byte(data), &cv))

	assert.Equal(t, "Jane", cv.Basics.FirstName)
	assert.Nil(t, cv.Basics.Phone)
	assert.Nil(t, cv.Basics.SocialProfiles)
	assert.Nil(t, cv.Basics.Location.City)
	assert.Nil(t, cv.Summaries)
	assert.Nil(t, cv.Work)
	assert.Nil(t, cv.Volunteer)
}

func TestCV_UnmarshalNestedPositions(t *testing.T) {
	data := `{
		"id": "1",
		"basics": {"firstName": "A", "lastName": "B", "email": "a@b.c", "location": {}},
		"work": [{
			"id": "w1",
			"name": "Acme",
			"startDate": "2020",
			"location": {"city": "Austin", "state": "TX"},
			"positions": [{
				"id": "p1",
				"startDate": "2021",
				"position": "Engineer",
				"highlights": ["Shipped it"],
				"stories": [{"id": "s1", "title": "Migration"}]
			}]
		}]
	}`

	var cv CV
	require.NoError(t, json.Unmarshal([]byte(data), &cv))

	require.Len(t, cv.Work, 1)
	require.Len(t, cv.Work[0].Positions, 1)
	assert.Equal(t, "Engineer", cv.Work[0].Positions[0].Position)
	assert.Nil(t, cv.Work[0].Positions[0].EndDate)
	assert.Equal(t, "Austin", *cv.Work[0].Location.City)
	assert.Equal(t, "Migration", cv.Work[0].Positions[0].Stories[0].Title)
}

func TestCV_Validate_Minimal(t *testing.T) {
	assert.NoError(t, minimalCV().Validate())
}

func TestCV_Validate_MissingEmail(t *testing.T) {
	cv := minimalCV()
	cv.Basics.Email = ""

	err := cv.Validate()
	require.Error(t, err)

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "basics.email", missing.Field)
}

func TestCV_Validate_MissingNestedPositionTitle(t *testing.T) {
	cv := minimalCV()
	cv.Work = []WorkEntry{
		{
			ID:        "w1",
			Name:      "Acme",
			StartDate: "2020",
			Positions: []Position{
				{ID: "p1", StartDate: "2020", Position: "Engineer"},
				{ID: "p2", StartDate: "2021"},
			},
		},
	}

	err := cv.Validate()
	require.Error(t, err)

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "work.0.positions.1.position", missing.Field)
}

func TestCV_Validate_ZeroPriorityIsValid(t *testing.T) {
	cv := minimalCV()
	cv.Summaries = []Summary{{Priority: 0, SummaryType: "general", Summary: []string{"Hello."}}}

	assert.NoError(t, cv.Validate())
}

func TestMissingFieldError_Message(t *testing.T) {
	err := &MissingFieldError{Field: "basics.firstName"}
	assert.Equal(t, "missing required field: basics.firstName", err.Error())
}
