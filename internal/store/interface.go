package store

import "context"

// Stats holds the numbers gathered after initialization. They are
// reported to the user and nothing else; no behavior branches on them.
type Stats struct {
	// Tables counts non-internal tables (names not starting with
	// "sqlite_").
	Tables int

	// RequestLogs counts rows in the request_logs table.
	RequestLogs int
}

// Store defines the hellodb datastore contract.
type Store interface {
	// Open opens the datastore connection
	Open() error

	// Close closes the datastore connection
	Close() error

	// Ping verifies the datastore is accessible
	Ping(ctx context.Context) error

	// InitSchema creates tables and indexes if absent and upserts the
	// seed rows; safe to call any number of times
	InitSchema(ctx context.Context) error

	// Stats gathers the post-init counts used in the report
	Stats(ctx context.Context) (Stats, error)
}
