package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteBackend keeps namespace blobs in a single key-value table. WAL mode
// gives crash-safe writes without blocking readers.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the state database at path.
func OpenSQLite(path string) (*SQLiteBackend, error) {
	if path == "" {
		return nil, errors.New("state database path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS store_state (
		namespace TEXT PRIMARY KEY,
		blob      BLOB NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
	)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create store_state table: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

func (b *SQLiteBackend) Load(namespace string) ([]byte, bool, error) {
	var blob []byte
	err := b.db.QueryRow(`SELECT blob FROM store_state WHERE namespace = ?`, namespace).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load state blob: %w", err)
	}
	return blob, true, nil
}

func (b *SQLiteBackend) Save(namespace string, blob []byte) error {
	_, err := b.db.Exec(`INSERT INTO store_state (namespace, blob, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT(namespace) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at`,
		namespace, blob)
	if err != nil {
		return fmt.Errorf("save state blob: %w", err)
	}
	return nil
}

func (b *SQLiteBackend) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}
