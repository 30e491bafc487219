package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every pooled connection to ":memory:" would get its own empty database.
	if isMemory(dataSourceName) {
		db.SetMaxOpenConns(1)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema. It is safe to run on every start.
func (db *DB) RunMigrations() error {
	migration := `
-- Viewer workspaces
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    client_id TEXT NOT NULL,
    filters TEXT NOT NULL,
    compare TEXT NOT NULL,
    active_record TEXT,
    details_open INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_activity TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_client_sessions ON sessions(client_id);

-- Local key-value storage (notes, onboarding flag)
CREATE TABLE IF NOT EXISTS kv_store (
    client_id TEXT NOT NULL,
    key TEXT NOT NULL,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (client_id, key)
);

-- Activity log
CREATE TABLE IF NOT EXISTS activity_log (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    client_id TEXT NOT NULL,
    session_id TEXT,
    record_id TEXT,
    activity_type TEXT NOT NULL,
    summary TEXT NOT NULL,
    details TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_client_activity ON activity_log(client_id);
CREATE INDEX IF NOT EXISTS idx_session_activity ON activity_log(session_id);
CREATE INDEX IF NOT EXISTS idx_created_at ON activity_log(created_at);

-- Catalog search index source
CREATE TABLE IF NOT EXISTS technologies (
    id TEXT NOT NULL UNIQUE,
    technology TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    vendor TEXT NOT NULL DEFAULT '',
    installation TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT ''
);

-- Full-text search (SQLite FTS5)
CREATE VIRTUAL TABLE IF NOT EXISTS technologies_fts USING fts5(
    technology,
    description,
    vendor,
    installation,
    tags,
    content='technologies',
    content_rowid='rowid'
);

-- Triggers to keep FTS index synchronized
CREATE TRIGGER IF NOT EXISTS technologies_ai AFTER INSERT ON technologies BEGIN
    INSERT INTO technologies_fts(rowid, technology, description, vendor, installation, tags)
    VALUES (new.rowid, new.technology, new.description, new.vendor, new.installation, new.tags);
END;

CREATE TRIGGER IF NOT EXISTS technologies_ad AFTER DELETE ON technologies BEGIN
    INSERT INTO technologies_fts(technologies_fts, rowid, technology, description, vendor, installation, tags)
    VALUES ('delete', old.rowid, old.technology, old.description, old.vendor, old.installation, old.tags);
END;

CREATE TRIGGER IF NOT EXISTS technologies_au AFTER UPDATE ON technologies BEGIN
    INSERT INTO technologies_fts(technologies_fts, rowid, technology, description, vendor, installation, tags)
    VALUES ('delete', old.rowid, old.technology, old.description, old.vendor, old.installation, old.tags);
    INSERT INTO technologies_fts(rowid, technology, description, vendor, installation, tags)
    VALUES (new.rowid, new.technology, new.description, new.vendor, new.installation, new.tags);
END;
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func isMemory(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}
