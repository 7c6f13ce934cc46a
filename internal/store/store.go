package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDBFile is the database filename. The file always lives
	// beside the hellodb executable so repeated runs from any working
	// directory target the same database.
	DefaultDBFile = "myapp.db"
)

// DefaultPath returns the stable database path beside the running
// executable.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), DefaultDBFile), nil
}

// CheckExists verifies if a database file exists at the given path.
// Returns true if the file exists, false otherwise.
func CheckExists(dbPath string) (bool, error) {
	info, err := os.Stat(dbPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check database existence: %w", err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("database path is a directory, expected file: %s", dbPath)
	}
	return true, nil
}
