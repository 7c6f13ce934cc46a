// Package conninfo writes the helper files that companion tooling
// uses to locate the database: a human-readable db_connection.txt and
// a shell-sourceable env file for the db_visualizer viewer.
package conninfo

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConnectionFile is written beside the database file.
	ConnectionFile = "db_connection.txt"

	// VisualizerDir holds the env file consumed by the viewer tool.
	VisualizerDir = "db_visualizer"

	// EnvFile is the shell-sourceable file under VisualizerDir.
	EnvFile = "sqlite.env"

	// EnvVar is the variable name exported by EnvFile.
	EnvVar = "SQLITE_DB"
)

// ConnectionString returns the URI form for dbPath.
func ConnectionString(dbPath string) string {
	return fmt.Sprintf("sqlite:///%s", dbPath)
}

// WriteConnectionFile writes db_connection.txt beside the database.
func WriteConnectionFile(dbPath string) error {
	body := fmt.Sprintf("# SQLite connection methods:\n"+
		"# Go: sql.Open(\"sqlite\", %q)\n"+
		"# Connection string: %s\n"+
		"# File path: %s\n",
		dbPath, ConnectionString(dbPath), dbPath)

	path := filepath.Join(filepath.Dir(dbPath), ConnectionFile)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", ConnectionFile, err)
	}
	return nil
}

// WriteEnvFile writes db_visualizer/sqlite.env beside the database,
// creating the directory if absent.
func WriteEnvFile(dbPath string) error {
	dir := filepath.Join(filepath.Dir(dbPath), VisualizerDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s directory: %w", VisualizerDir, err)
	}

	line := fmt.Sprintf("export %s=%q\n", EnvVar, dbPath)
	if err := os.WriteFile(filepath.Join(dir, EnvFile), []byte(line), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", EnvFile, err)
	}
	return nil
}
