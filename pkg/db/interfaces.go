package db

import "context"

// SnapshotStore defines the interface for persisting the volunteer and event lists.
// The JSON file, SQLite, Postgres and SheetsSQL-backed stores all implement it.
type SnapshotStore interface {
	// LoadSnapshot returns the latest saved snapshot, or nil if nothing has been saved yet
	LoadSnapshot(ctx context.Context) (*Snapshot, error)
	// SaveSnapshot persists s as the latest snapshot
	SaveSnapshot(ctx context.Context, s *Snapshot) error
}
