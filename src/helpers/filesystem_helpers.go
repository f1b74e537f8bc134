package helpers_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TempPath returns a path inside the test's temporary directory without
// creating the file.
func TempPath(t *testing.T, fileName string) string {
	t.Helper()

	return filepath.Join(t.TempDir(), fileName)
}

// WriteTempFile writes content to a new file in the test's temporary
// directory and returns its path. The file is removed when the test is done.
func WriteTempFile(t *testing.T, fileName string, content string) string {
	t.Helper()

	path := TempPath(t, fileName)
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	return path
}

// ReadFile returns the contents of the file at path, failing the test if it
// can't be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(content)
}
