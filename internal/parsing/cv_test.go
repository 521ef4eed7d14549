package parsing

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/ats-resume/internal/schemas"
	"github.com/jonathan/ats-resume/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testdataPath(name string) string {
	return filepath.Join("..", "..", "testdata", "cv", name)
}

func TestLoadCV_Example(t *testing.T) {
	cv, err := LoadCV(testdataPath("example.json"))
	require.NoError(t, err)

	assert.Equal(t, "cv_jane_doe", cv.ID)
	assert.Equal(t, "Jane", cv.Basics.FirstName)
	require.NotNil(t, cv.Basics.Phone)
	assert.Equal(t, "(555) 123-4567", *cv.Basics.Phone)
	assert.Len(t, cv.Summaries, 3)
	assert.Len(t, cv.Work, 2)
	assert.Len(t, cv.Work[0].Positions, 2)
	assert.Nil(t, cv.Work[1].Positions)
}

func TestLoadCV_Minimal(t *testing.T) {
	cv, err := LoadCV(testdataPath("minimal.json"))
	require.NoError(t, err)

	assert.Nil(t, cv.Summaries)
	assert.Nil(t, cv.Skills)
	assert.Nil(t, cv.Basics.Location.City)
}

func TestLoadCV_MissingRequiredField(t *testing.T) {
	cv, err := LoadCV(testdataPath("missing_email.json"))
	require.Error(t, err)
	assert.Nil(t, cv)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))

	var missing *types.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "basics.email", missing.Field)
}

func TestLoadCV_FileNotFound(t *testing.T) {
	cv, err := LoadCV("/nonexistent/cv.json")
	require.Error(t, err)
	assert.Nil(t, cv)

	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestDecodeCV_MalformedJSON(t *testing.T) {
	cv, err := DecodeCV([]byte(`{ invalid json }`))
	require.Error(t, err)
	assert.Nil(t, cv)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "failed to unmarshal JSON", decodeErr.Message)
	assert.NotNil(t, decodeErr.Cause)
}

func TestDecodeCV_TypeMismatch(t *testing.T) {
	data := `{
		"id": "1",
		"basics": {"firstName": "A", "lastName": "B", "email": "a@b.c", "location": {}},
		"skills": [{"id": "s1", "level": "Expert", "name": 42}]
	}`

	cv, err := DecodeCV([]byte(data))
	require.Error(t, err)
	assert.Nil(t, cv)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))

	var validationErr *schemas.ValidationError
	assert.True(t, errors.As(err, &validationErr))

	var missing *types.MissingFieldError
	assert.False(t, errors.As(err, &missing))
}

func TestDecodeCV_MissingNestedRequiredField(t *testing.T) {
	data := `{
		"id": "1",
		"basics": {"firstName": "A", "lastName": "B", "email": "a@b.c", "location": {}},
		"education": [{"institution": "MIT", "studyType": "BSc", "startDate": "2010"}]
	}`

	_, err := DecodeCV([]byte(data))
	require.Error(t, err)

	var missing *types.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "education.0.endDate", missing.Field)
}

func TestDecodeCV_MissingLocationIsRejected(t *testing.T) {
	data := `{"id": "1", "basics": {"firstName": "A", "lastName": "B", "email": "a@b.c"}}`

	_, err := DecodeCV([]byte(data))

	var missing *types.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "basics.location", missing.Field)
}

func TestDecodeCV_UnknownKeysIgnored(t *testing.T) {
	data := `{
		"id": "1",
		"meta": {"version": 3},
		"basics": {"firstName": "A", "lastName": "B", "email": "a@b.c", "location": {}, "nickname": "ab"}
	}`

	cv, err := DecodeCV([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, "A", cv.Basics.FirstName)
}

func TestReadCV(t *testing.T) {
	content, err := os.ReadFile(testdataPath("minimal.json"))
	require.NoError(t, err)

	cv, err := ReadCV(strings.NewReader(string(content)))
	require.NoError(t, err)
	assert.Equal(t, "cv_minimal", cv.ID)
}

func TestDecodeCV_NullOptionalFieldsAreAbsent(t *testing.T) {
	data := `{
		"id": "1",
		"basics": {
			"firstName": "A",
			"lastName": "B",
			"email": "a@b.c",
			"phone": null,
			"location": {"city": null, "state": "NY"}
		},
		"skills": null,
		"work": null,
		"education": [{"institution": "MIT", "studyType": "BSc", "startDate": "2010", "endDate": "2014", "area": null, "location": null}]
	}`

	cv, err := DecodeCV([]byte(data))
	require.NoError(t, err)

	assert.Nil(t, cv.Basics.Phone)
	assert.Nil(t, cv.Basics.Location.City)
	require.NotNil(t, cv.Basics.Location.State)
	assert.Equal(t, "NY", *cv.Basics.Location.State)
	assert.Nil(t, cv.Skills)
	assert.Nil(t, cv.Work)
	require.Len(t, cv.Education, 1)
	assert.Nil(t, cv.Education[0].Area)
	assert.Nil(t, cv.Education[0].Location)
}

func TestDecodeCV_NullRequiredFieldIsRejected(t *testing.T) {
	data := `{"id": "1", "basics": {"firstName": "A", "lastName": null, "email": "a@b.c", "location": {}}}`

	cv, err := DecodeCV([]byte(data))
	require.Error(t, err)
	assert.Nil(t, cv)

	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestDecodeCV_EmptyRequiredStringDecodes(t *testing.T) {
	data := `{"id": "1", "basics": {"firstName": "A", "lastName": "B", "email": "", "location": {}}}`

	cv, err := DecodeCV([]byte(data))
	require.NoError(t, err)

	// decoding only checks presence; the stricter CV.Validate rejects the empty value
	var missing *types.MissingFieldError
	require.True(t, errors.As(cv.Validate(), &missing))
	assert.Equal(t, "basics.email", missing.Field)
}
