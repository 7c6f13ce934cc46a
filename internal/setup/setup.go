// Package setup runs the one-shot database initialization sequence:
// pre-check, schema application, statistics, helper files, report.
package setup

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/maloquacious/hellodb/internal/conninfo"
	"github.com/maloquacious/hellodb/internal/logger"
	"github.com/maloquacious/hellodb/internal/store"
	"github.com/maloquacious/hellodb/internal/store/sqlite"
)

// Options configure a single initializer run.
type Options struct {
	// DBPath is the resolved database file path.
	DBPath string

	// Log receives warnings; defaults to logger.Default.
	Log logger.Logger

	// Out receives the progress and report lines; defaults to stdout.
	Out io.Writer
}

// Run executes the full sequence. Schema errors abort the run and are
// returned; helper-file errors are logged as warnings and the run
// continues to completion.
func Run(ctx context.Context, opts Options) error {
	log := opts.Log
	if log == nil {
		log = logger.Default
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	dbPath := opts.DBPath

	fmt.Fprintln(out, "Starting SQLite setup...")

	exists, err := store.CheckExists(dbPath)
	if err != nil {
		return err
	}
	if exists {
		fmt.Fprintf(out, "SQLite database already exists at %s\n", dbPath)
		if err := ping(ctx, dbPath); err != nil {
			log.Warn("database exists but may be corrupted: %v", err)
		} else {
			fmt.Fprintln(out, "Database is accessible and working.")
		}
	} else {
		fmt.Fprintf(out, "Creating new SQLite database at %s...\n", dbPath)
	}

	if err := applySchema(ctx, dbPath); err != nil {
		return err
	}

	stats, err := gatherStats(ctx, dbPath)
	if err != nil {
		return err
	}

	if err := conninfo.WriteConnectionFile(dbPath); err != nil {
		log.Warn("could not save connection info: %v", err)
	}
	if err := conninfo.WriteEnvFile(dbPath); err != nil {
		log.Warn("could not save environment variables: %v", err)
	}

	report(out, dbPath, stats)
	return nil
}

func ping(ctx context.Context, dbPath string) error {
	s := sqlite.New(dbPath)
	if err := s.Open(); err != nil {
		return err
	}
	defer s.Close()
	return s.Ping(ctx)
}

func applySchema(ctx context.Context, dbPath string) error {
	s := sqlite.New(dbPath)
	if err := s.Open(); err != nil {
		return err
	}
	defer s.Close()
	return s.InitSchema(ctx)
}

// gatherStats uses a second short-lived connection, matching the
// open/use/close discipline of the schema step.
func gatherStats(ctx context.Context, dbPath string) (store.Stats, error) {
	s := sqlite.New(dbPath)
	if err := s.Open(); err != nil {
		return store.Stats{}, err
	}
	defer s.Close()
	return s.Stats(ctx)
}

func report(out io.Writer, dbPath string, stats store.Stats) {
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "SQLite setup complete!")
	fmt.Fprintf(out, "Database: %s\n", filepath.Base(dbPath))
	fmt.Fprintf(out, "Location: %s\n", dbPath)
	if fi, err := os.Stat(dbPath); err == nil {
		fmt.Fprintf(out, "Size: %s\n", humanize.Bytes(uint64(fi.Size())))
	}
	fmt.Fprintln(out, "")
	fmt.Fprintf(out, "To use with the viewer, run: source %s\n",
		filepath.Join(conninfo.VisualizerDir, conninfo.EnvFile))
	fmt.Fprintln(out, "\nTo connect to the database, use one of the following methods:")
	fmt.Fprintf(out, "1. Go: sql.Open(\"sqlite\", %q)\n", dbPath)
	fmt.Fprintf(out, "2. Connection string: %s\n", conninfo.ConnectionString(dbPath))
	fmt.Fprintf(out, "3. Direct file access: %s\n", dbPath)
	fmt.Fprintln(out, "\nDatabase statistics:")
	fmt.Fprintf(out, "  Tables: %d\n", stats.Tables)
	fmt.Fprintf(out, "  Request logs records: %d\n", stats.RequestLogs)

	// Detection failure just means no extra hint.
	if _, err := exec.LookPath("sqlite3"); err == nil {
		fmt.Fprintln(out, "\nSQLite CLI is available. You can also use:")
		fmt.Fprintf(out, "  sqlite3 %s\n", dbPath)
	}

	fmt.Fprintln(out, "\nSetup finished successfully.")
}
