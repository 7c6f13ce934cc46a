package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maloquacious/hellodb/internal/store"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface using modernc.org/sqlite.
type SQLiteStore struct {
	dbPath string
	db     *sql.DB
}

// New creates a new SQLiteStore for the database at dbPath.
func New(dbPath string) *SQLiteStore {
	return &SQLiteStore{dbPath: dbPath}
}

// Open opens the SQLite database with safe defaults.
func (s *SQLiteStore) Open() error {
	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Apply safe defaults
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	s.db = db
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the path backing the store.
func (s *SQLiteStore) Path() string {
	return s.dbPath
}

// Ping verifies the database is accessible.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}
	var one int
	if err := s.db.QueryRowContext(ctx, `SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("database not accessible: %w", err)
	}
	return nil
}

// InitSchema creates the tables and indexes if absent and upserts the
// seed rows, all in one transaction.
func (s *SQLiteStore) InitSchema(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{appInfoSchema, usersSchema, requestLogsSchema, requestLogsIndexes} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	for _, row := range seedInfo {
		_, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO app_info (key, value) VALUES (?, ?)`,
			row.Key, row.Value)
		if err != nil {
			return fmt.Errorf("failed to seed app_info key %q: %w", row.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Stats counts non-internal tables and request_logs rows. The counts
// are informational only.
func (s *SQLiteStore) Stats(ctx context.Context) (store.Stats, error) {
	var st store.Stats
	if s.db == nil {
		return st, fmt.Errorf("database not opened")
	}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%'`).
		Scan(&st.Tables)
	if err != nil {
		return st, fmt.Errorf("failed to count tables: %w", err)
	}

	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM request_logs`).Scan(&st.RequestLogs)
	if err != nil {
		return st, fmt.Errorf("failed to count request logs: %w", err)
	}

	return st, nil
}
