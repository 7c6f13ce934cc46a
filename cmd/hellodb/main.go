package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"

	"github.com/maloquacious/hellodb/internal/logger"
	"github.com/maloquacious/hellodb/internal/setup"
	"github.com/maloquacious/hellodb/internal/store"
	"github.com/maloquacious/hellodb/internal/store/sqlite"
)

var (
	version = semver.Version{Minor: 1, PreRelease: "alpha", Build: semver.Commit()}
)

var (
	dbPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hellodb",
		Short: "Initialize the SQLite database for the hello_database app",
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file path (default: myapp.db beside the executable)")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create tables, indexes, and seed rows; write connection helper files",
		RunE:  runInit,
	}

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that the database file exists and is accessible",
		RunE:  runVerify,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the hellodb version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}

	rootCmd.AddCommand(initCmd, verifyCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveDBPath applies the override chain: --db flag, then SQLITE_DB
// (optionally loaded from a .env beside the executable), then the
// stable default beside the executable.
func resolveDBPath() (string, error) {
	if dbPath != "" {
		return filepath.Abs(dbPath)
	}
	if exe, err := os.Executable(); err == nil {
		// A missing .env is fine; only an explicit file is loaded.
		_ = godotenv.Load(filepath.Join(filepath.Dir(exe), ".env"))
	}
	if p := os.Getenv("SQLITE_DB"); p != "" {
		return filepath.Abs(p)
	}
	return store.DefaultPath()
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	return setup.Run(cmd.Context(), setup.Options{
		DBPath: path,
		Log:    logger.Default,
		Out:    cmd.OutOrStdout(),
	})
}

func runVerify(cmd *cobra.Command, args []string) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	exists, err := store.CheckExists(path)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("no database at %s (run \"hellodb init\" first)", path)
	}

	s := sqlite.New(path)
	if err := s.Open(); err != nil {
		return err
	}
	defer s.Close()

	if err := s.Ping(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Database at %s is accessible and working.\n", path)
	return nil
}
