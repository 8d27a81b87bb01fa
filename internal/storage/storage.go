// Package storage is the bot's durable state: which messages stay
// user-deletable and which messages are live role panels. Backed by a
// single SQLite file; no in-memory caching, every call hits the store.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS deletable_messages (
	message_id TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS role_panels (
	message_id TEXT PRIMARY KEY,
	channel_id TEXT NOT NULL,
	guild_id   TEXT NOT NULL,
	roles_json TEXT NOT NULL
);
`

type Storage struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at path and ensures the schema.
func New(path string) (*Storage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
