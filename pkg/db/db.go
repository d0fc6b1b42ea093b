package db

import (
	"context"
	"fmt"

	"github.com/jakechorley/volunteer-manager/pkg/sheetssql"
)

// DB stores snapshots in a SheetsSQL spreadsheet
// Sheets are append-only: every save adds a new snapshot and loads read the latest one
type DB struct {
	ssql *sheetssql.DB
}

// NewDB creates a new database instance
func NewDB(ssql *sheetssql.DB) *DB {
	return &DB{
		ssql: ssql,
	}
}

// Schema returns the SheetsSQL schema of the snapshot tables
func Schema() (*sheetssql.Schema, error) {
	return sheetssql.SchemaFromModels(SnapshotRecord{}, VolunteerRecord{}, EventRecord{})
}

// SaveSnapshot appends the snapshot's rows, writing the snapshot record last
func (db *DB) SaveSnapshot(ctx context.Context, s *Snapshot) error {
	s.stamp()

	if err := sheetssql.InsertModels(db.ssql, s.Volunteers); err != nil {
		return fmt.Errorf("failed to insert volunteer records: %w", err)
	}
	if err := sheetssql.InsertModels(db.ssql, s.Events); err != nil {
		return fmt.Errorf("failed to insert event records: %w", err)
	}
	if err := sheetssql.InsertModel(db.ssql, s.Record()); err != nil {
		return fmt.Errorf("failed to insert snapshot record: %w", err)
	}
	return nil
}

// LoadSnapshot returns the most recently appended complete snapshot
func (db *DB) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	records, err := sheetssql.GetTableAs[SnapshotRecord](db.ssql, "snapshot_record")
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot records: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	latest := records[len(records)-1]

	volunteers, err := sheetssql.GetTableAs[VolunteerRecord](db.ssql, "volunteer_record")
	if err != nil {
		return nil, fmt.Errorf("failed to get volunteer records: %w", err)
	}
	events, err := sheetssql.GetTableAs[EventRecord](db.ssql, "event_record")
	if err != nil {
		return nil, fmt.Errorf("failed to get event records: %w", err)
	}

	return assemble(latest, volunteers, events)
}

// assemble collects the rows belonging to record into a snapshot
func assemble(record SnapshotRecord, volunteers []VolunteerRecord, events []EventRecord) (*Snapshot, error) {
	savedAt, err := parseSavedAt(record.SavedAt)
	if err != nil {
		return nil, err
	}

	s := &Snapshot{
		ID:         record.ID,
		SavedAt:    savedAt,
		Volunteers: filterBySnapshot(volunteers, record.ID, func(r VolunteerRecord) string { return r.SnapshotID }),
		Events:     filterBySnapshot(events, record.ID, func(r EventRecord) string { return r.SnapshotID }),
	}

	if len(s.Volunteers) != record.VolunteerCount || len(s.Events) != record.EventCount {
		return nil, fmt.Errorf("snapshot %s is incomplete: expected %d volunteers and %d events, found %d and %d",
			record.ID, record.VolunteerCount, record.EventCount, len(s.Volunteers), len(s.Events))
	}

	s.Volunteers = sortedByPosition(s.Volunteers, func(r VolunteerRecord) int { return r.Position })
	s.Events = sortedByPosition(s.Events, func(r EventRecord) int { return r.Position })
	return s, nil
}

func filterBySnapshot[T any](records []T, snapshotID string, id func(T) string) []T {
	var out []T
	for _, r := range records {
		if id(r) == snapshotID {
			out = append(out, r)
		}
	}
	return out
}
