package rendering

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// VariantFileName returns the file name a variant is exported under
func VariantFileName(variant string) string {
	return variant + "_resume.txt"
}

// WriteText writes rendered resume text to path, creating parent directories.
func WriteText(path, text string) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return &RenderError{
				Message: fmt.Sprintf("failed to create output directory %s", outputDir),
				Cause:   err,
			}
		}
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return &RenderError{
			Message: fmt.Sprintf("failed to write output file %s", path),
			Cause:   err,
		}
	}
	return nil
}

// WriteVariants writes each variant to "<dir>/<variant>_resume.txt" in name
// order and returns the written paths.
func WriteVariants(dir string, variants map[string]string) ([]string, error) {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, VariantFileName(name))
		if err := WriteText(path, variants[name]); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
