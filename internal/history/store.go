// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry kinds, matching the CLI subcommand that produced the conversion.
const (
	KindHex    = "hex"
	KindNumber = "number"
	KindString = "string"
)

// ErrClosed is returned when operating on a closed store.
var ErrClosed = errors.New("history: store is closed")

// ErrNotFound is returned when no entry has the requested ID.
var ErrNotFound = errors.New("history: entry not found")

// =============================================================================
// ENTRY TYPE
// =============================================================================

// Entry is one recorded conversion.
type Entry struct {
	// ID is a UUID assigned on record.
	ID string `json:"id"`
	// Kind is the input kind: KindHex, KindNumber, or KindString.
	Kind string `json:"kind"`
	// Input is the raw input text as the user typed it.
	Input string `json:"input"`
	// Bytes is the parsed byte sequence as uppercase spaced hex.
	Bytes string `json:"bytes"`
	// Endian is the endianness in effect ("big" or "little").
	Endian string `json:"endian"`
	// Mode is the representation mode in effect.
	Mode string `json:"mode"`
	// Width is the encode width for number input (0 for other kinds).
	Width int `json:"width"`
	// CreatedAt is when the conversion was recorded.
	CreatedAt time.Time `json:"created_at"`
}

// Stats summarizes the stored history.
type Stats struct {
	Total  int
	ByKind map[string]int
	Oldest time.Time
	Newest time.Time
}

// =============================================================================
// STORE
// =============================================================================

const schema = `
CREATE TABLE IF NOT EXISTS conversions (
	id         TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	input      TEXT NOT NULL,
	bytes      TEXT NOT NULL,
	endian     TEXT NOT NULL,
	mode       TEXT NOT NULL,
	width      INTEGER NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_conversions_created ON conversions(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_conversions_kind ON conversions(kind);
`

// Store persists conversion history in SQLite.
type Store struct {
	db         *sql.DB
	maxEntries int
}

// DefaultPath returns the default history database path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".hexspect", "history.db"), nil
}

// Open opens (creating if needed) the history database at path.
// maxEntries caps stored rows; 0 means unlimited.
func Open(path string, maxEntries int) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=MEMORY",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db, maxEntries: maxEntries}, nil
}

// Close closes the store and releases resources.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// =============================================================================
// RECORD / QUERY
// =============================================================================

// Record inserts an entry, assigning an ID and timestamp when missing,
// then prunes the oldest rows past the configured maximum.
func (s *Store) Record(ctx context.Context, e *Entry) error {
	if s.db == nil {
		return ErrClosed
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (id, kind, input, bytes, endian, mode, width, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Kind, e.Input, e.Bytes, e.Endian, e.Mode, e.Width, e.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record conversion: %w", err)
	}

	return s.prune(ctx)
}

// prune deletes the oldest rows past maxEntries.
func (s *Store) prune(ctx context.Context) error {
	if s.maxEntries <= 0 {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM conversions WHERE id IN (
			SELECT id FROM conversions ORDER BY created_at DESC, id LIMIT -1 OFFSET ?
		 )`, s.maxEntries)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}
	return nil
}

// Recent returns the newest entries, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, input, bytes, endian, mode, width, created_at
		 FROM conversions ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Get returns a single entry by ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	row := s.db.QueryRowContext(ctx,
		`SELECT id, kind, input, bytes, endian, mode, width, created_at
		 FROM conversions WHERE id = ?`, id)

	var e Entry
	var created int64
	if err := row.Scan(&e.ID, &e.Kind, &e.Input, &e.Bytes, &e.Endian, &e.Mode, &e.Width, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load history entry: %w", err)
	}
	e.CreatedAt = time.UnixMilli(created)
	return &e, nil
}

// Search returns entries whose input contains the query, newest first.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]Entry, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, input, bytes, endian, mode, width, created_at
		 FROM conversions WHERE input LIKE ?
		 ORDER BY created_at DESC, id LIMIT ?`,
		"%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search history: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var created int64
		if err := rows.Scan(&e.ID, &e.Kind, &e.Input, &e.Bytes, &e.Endian, &e.Mode, &e.Width, &created); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.CreatedAt = time.UnixMilli(created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear deletes all history entries.
func (s *Store) Clear(ctx context.Context) error {
	if s.db == nil {
		return ErrClosed
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM conversions`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// GetStats returns summary statistics for the stored history.
func (s *Store) GetStats(ctx context.Context) (*Stats, error) {
	if s.db == nil {
		return nil, ErrClosed
	}

	stats := &Stats{ByKind: make(map[string]int)}

	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MIN(created_at), 0), COALESCE(MAX(created_at), 0) FROM conversions`)
	var oldest, newest int64
	if err := row.Scan(&stats.Total, &oldest, &newest); err != nil {
		return nil, fmt.Errorf("failed to query history stats: %w", err)
	}
	if stats.Total > 0 {
		stats.Oldest = time.UnixMilli(oldest)
		stats.Newest = time.UnixMilli(newest)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT kind, COUNT(*) FROM conversions GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("failed to query history stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		stats.ByKind[kind] = n
	}
	return stats, rows.Err()
}
