package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// FileSpec describes a file to be written under a test directory.
type FileSpec struct {
	// Path is relative to the test directory.
	Path string
	// Content is the file content.
	Content string
}

// MustWriteTestFiles writes the files under a fresh temporary directory and
// returns the directory and the absolute filenames.
func MustWriteTestFiles(t *testing.T, files []FileSpec) (tmpDir string, filenames []string) {
	tmpDir = t.TempDir()
	for _, file := range files {
		abs := filepath.Join(tmpDir, file.Path)
		if err := os.MkdirAll(filepath.Dir(abs), os.ModePerm); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(abs, []byte(file.Content), 0644); err != nil {
			t.Fatal(err)
		}
		filenames = append(filenames, abs)
	}
	return tmpDir, filenames
}
