package main

import (
	"os"
	"path/filepath"
	"testing"
)

// exampleCVPath is the shared example CV fixture
var exampleCVPath = filepath.Join("..", "..", "testdata", "cv", "example.json")

// getBinaryPath returns the path to the ats_resume binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "ats_resume"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/ats_resume ./cmd/ats_resume'", binaryPath)
	}

	return binaryPath
}
