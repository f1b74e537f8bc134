package truthtable

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteCSVFile exports the table to a CSV file, replacing the file if it
// exists. It returns the absolute path of the written file.
func WriteCSVFile(path string, t *Table) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// only used to tell the user where the file ended up. Best effort.
		absPath = path
	}

	file, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", absPath, err)
	}
	defer file.Close()

	if err := WriteCSV(file, t); err != nil {
		return "", fmt.Errorf("failed to export truth table to %s: %w", absPath, err)
	}

	return absPath, file.Close()
}
