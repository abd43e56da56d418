package cache

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStore creates a new SQLite-backed result store. Use ":memory:"
// for an in-memory database, or a file path for persistent storage.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close() // Best effort cleanup on initialization error
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS results (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		created INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_created ON results(created);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Get(ctx context.Context, key Key) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var payload []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM results WHERE key = ?", string(key),
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query result: %w", err)
	}
	return payload, true, nil
}

func (s *SQLiteStore) Put(ctx context.Context, key Key, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO results (key, payload, created) VALUES (?, ?, ?)",
		string(key), payload, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
