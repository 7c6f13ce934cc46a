package sqlite

// Schema statements are all create-if-absent so InitSchema can run
// arbitrarily many times against the same file without touching
// existing rows.

const appInfoSchema = `
CREATE TABLE IF NOT EXISTS app_info (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    key TEXT UNIQUE NOT NULL,
    value TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    email TEXT UNIQUE NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// request_logs backs the Hello + Location + Temperature app.
// timestamp is INTEGER epoch milliseconds for easy ordering/queries;
// location is TEXT so the backend can store either a human-readable
// string or stringified JSON without schema churn.
const requestLogsSchema = `
CREATE TABLE IF NOT EXISTS request_logs (
    id INTEGER PRIMARY KEY,
    route TEXT NOT NULL,
    timestamp INTEGER NOT NULL,
    ip TEXT,
    user_agent TEXT,
    location TEXT,
    temperature REAL,
    units TEXT
);
`

const requestLogsIndexes = `
CREATE INDEX IF NOT EXISTS idx_request_logs_timestamp ON request_logs(timestamp);
CREATE INDEX IF NOT EXISTS idx_request_logs_route ON request_logs(route);
`

// seedInfo rows are upserted on every run: the four keys below are
// reset to these values, other app_info rows are left alone.
var seedInfo = []struct {
	Key   string
	Value string
}{
	{"project_name", "hello_database"},
	{"version", "0.1.0"},
	{"author", "John Doe"},
	{"description", "SQLite DB backing the Hello+Location+Temperature app with request logging."},
}
