package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/ats-resume/internal/builder"
	"github.com/jonathan/ats-resume/internal/parsing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaffoldCV_Validates(t *testing.T) {
	cv := scaffoldCV("Ada", "Lovelace", "ada@example.com")

	require.NoError(t, cv.Validate())
	_, err := uuid.Parse(cv.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, cv.Work[0].ID, cv.Work[0].Positions[0].ID)
}

func TestScaffoldJSON_DecodesAndRenders(t *testing.T) {
	jsonBytes, err := scaffoldJSON("Ada", "Lovelace", "ada@example.com")
	require.NoError(t, err)

	cv, err := parsing.DecodeCV(jsonBytes)
	require.NoError(t, err)
	assert.Equal(t, "Ada", cv.Basics.FirstName)

	variants := builder.New(*cv).BuildVariants()
	assert.Contains(t, variants[builder.VariantDefault], "Ada Lovelace")
	assert.Contains(t, variants[builder.VariantTechnical], "A summary for engineering roles.")
	assert.Contains(t, variants[builder.VariantManagement], "A summary for management roles.")
}

func TestScaffoldCommand_MissingOutFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "scaffold")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required flag(s) \"out\" not set")
}

func TestScaffoldCommand_WritesAndRefusesOverwrite(t *testing.T) {
	binaryPath := getBinaryPath(t)
	outputFile := filepath.Join(t.TempDir(), "cv.json")

	cmd := exec.Command(binaryPath, "scaffold", "--out", outputFile, "--first-name", "Ada", "--last-name", "Lovelace")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	_, err = parsing.DecodeCV(content)
	require.NoError(t, err)

	cmd = exec.Command(binaryPath, "scaffold", "--out", outputFile)
	output, err = cmd.CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(output), "already exists")

	cmd = exec.Command(binaryPath, "scaffold", "--out", outputFile, "--force")
	output, err = cmd.CombinedOutput()
	assert.NoError(t, err, string(output))
}
