package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/jakechorley/volunteer-manager/pkg/db"
)

const (
	bucketMeta       = "meta"
	bucketVolunteers = "volunteers"
	bucketEvents     = "events"
)

// meta is the bucket holding the snapshot's identity
type meta struct {
	ID      string    `json:"id"`
	SavedAt time.Time `json:"saved_at"`
}

// Store persists snapshots to a single SQLite table of JSON buckets
// Only the latest snapshot is kept
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the SQLite database at path
func NewStore(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		path = "volunteers.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if _, err := sqlDB.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS snapshot (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to create snapshot table: %w", err)
	}

	return &Store{db: sqlDB, path: path}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.path
}

// LoadSnapshot reads every bucket back into a snapshot
func (s *Store) LoadSnapshot(ctx context.Context) (*db.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT bucket, payload FROM snapshot`)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	defer func() { _ = rows.Close() }()

	payloads := make(map[string][]byte)
	for rows.Next() {
		var bucket string
		var payload []byte
		if err := rows.Scan(&bucket, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot bucket: %w", err)
		}
		payloads[bucket] = payload
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot buckets: %w", err)
	}

	if len(payloads) == 0 {
		return nil, nil
	}

	var m meta
	snapshot := &db.Snapshot{}
	decode := []struct {
		bucket string
		into   any
	}{
		{bucketMeta, &m},
		{bucketVolunteers, &snapshot.Volunteers},
		{bucketEvents, &snapshot.Events},
	}
	for _, d := range decode {
		payload, ok := payloads[d.bucket]
		if !ok {
			return nil, fmt.Errorf("snapshot is missing the %s bucket", d.bucket)
		}
		if err := json.Unmarshal(payload, d.into); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", d.bucket, err)
		}
	}

	snapshot.ID = m.ID
	snapshot.SavedAt = m.SavedAt
	return snapshot, nil
}

// SaveSnapshot upserts every bucket in one transaction
func (s *Store) SaveSnapshot(ctx context.Context, snapshot *db.Snapshot) (retErr error) {
	encode := []struct {
		bucket string
		value  any
	}{
		{bucketMeta, meta{ID: snapshot.ID, SavedAt: snapshot.SavedAt}},
		{bucketVolunteers, snapshot.Volunteers},
		{bucketEvents, snapshot.Events},
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	for _, e := range encode {
		data, err := json.Marshal(e.value)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", e.bucket, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snapshot(bucket, payload) VALUES(?, ?) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`,
			e.bucket, data,
		); err != nil {
			return fmt.Errorf("failed to upsert %s: %w", e.bucket, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}
