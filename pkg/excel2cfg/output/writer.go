package output

import (
	"os"
	"path/filepath"

	"github.com/ukaji3/excel2cfg-go/pkg/excel2cfg/models"
)

// ArtifactName returns the file name of a sheet artifact.
func ArtifactName(prefix, baseName, format string) string {
	return prefix + "_" + baseName + "." + format
}

// WriteArtifact writes content to <root>/<relDir>/<fileName> under every
// root. Each root is attempted independently; a failure on one does not
// prevent writes to the others.
func WriteArtifact(roots []string, relDir, fileName, format string, content []byte) []models.OutputResult {
	results := make([]models.OutputResult, 0, len(roots))
	for _, root := range roots {
		path := filepath.Join(root, relDir, fileName)
		res := models.OutputResult{Format: format, Dir: root, Path: path}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			res.Err = err
		} else if err := os.WriteFile(path, content, 0644); err != nil {
			res.Err = err
		}
		results = append(results, res)
	}
	return results
}
