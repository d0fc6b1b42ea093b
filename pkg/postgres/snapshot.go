package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-manager/pkg/db"
)

// LoadSnapshot returns the most recently saved snapshot, or nil if none has been saved
func (d *DB) LoadSnapshot(ctx context.Context) (*db.Snapshot, error) {
	var s db.Snapshot
	var volunteerCount, eventCount int
	err := d.pool.QueryRow(ctx, `
		SELECT id::text, saved_at, volunteer_count, event_count
		FROM snapshot
		ORDER BY saved_at DESC
		LIMIT 1
	`).Scan(&s.ID, &s.SavedAt, &volunteerCount, &eventCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest snapshot: %w", err)
	}
	s.SavedAt = s.SavedAt.UTC()

	if s.Volunteers, err = d.getVolunteers(ctx, s.ID); err != nil {
		return nil, err
	}
	if s.Events, err = d.getEvents(ctx, s.ID); err != nil {
		return nil, err
	}

	if len(s.Volunteers) != volunteerCount || len(s.Events) != eventCount {
		return nil, fmt.Errorf("snapshot %s is incomplete: expected %d volunteers and %d events, found %d and %d",
			s.ID, volunteerCount, eventCount, len(s.Volunteers), len(s.Events))
	}

	return &s, nil
}

func (d *DB) getVolunteers(ctx context.Context, snapshotID string) ([]db.VolunteerRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT position, name, phone, email, address, skills
		FROM volunteer
		WHERE snapshot_id = $1
		ORDER BY position
	`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteers: %w", err)
	}
	defer rows.Close()

	volunteers := []db.VolunteerRecord{}
	for rows.Next() {
		v := db.VolunteerRecord{SnapshotID: snapshotID}
		if err := rows.Scan(&v.Position, &v.Name, &v.Phone, &v.Email, &v.Address, &v.Skills); err != nil {
			return nil, fmt.Errorf("failed to scan volunteer: %w", err)
		}
		volunteers = append(volunteers, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating volunteers: %w", err)
	}

	return volunteers, nil
}

func (d *DB) getEvents(ctx context.Context, snapshotID string) ([]db.EventRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT position, name, roles, date_and_time, location, description, materials,
			budget::text, recurrence
		FROM event
		WHERE snapshot_id = $1
		ORDER BY position
	`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []db.EventRecord{}
	for rows.Next() {
		e := db.EventRecord{SnapshotID: snapshotID}
		var budget, recurrence *string
		if err := rows.Scan(&e.Position, &e.Name, &e.Roles, &e.DateAndTime, &e.Location, &e.Description,
			&e.Materials, &budget, &recurrence); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		if budget != nil {
			e.Budget = *budget
		}
		if recurrence != nil {
			e.Recurrence = *recurrence
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// SaveSnapshot writes the snapshot and its rows in one transaction, then prunes
// snapshots beyond the configured retention
func (d *DB) SaveSnapshot(ctx context.Context, s *db.Snapshot) error {
	err := pgx.BeginFunc(ctx, d.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO snapshot (id, saved_at, volunteer_count, event_count)
			VALUES ($1, $2, $3, $4)
		`, s.ID, s.SavedAt.UTC(), len(s.Volunteers), len(s.Events)); err != nil {
			return fmt.Errorf("failed to insert snapshot: %w", err)
		}

		batch := &pgx.Batch{}
		for i, v := range s.Volunteers {
			batch.Queue(`
				INSERT INTO volunteer (snapshot_id, position, name, phone, email, address, skills)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, s.ID, i, v.Name, v.Phone, v.Email, v.Address, nonNil(v.Skills))
		}
		for i, e := range s.Events {
			batch.Queue(`
				INSERT INTO event (snapshot_id, position, name, roles, date_and_time, location, description,
					materials, budget, recurrence)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, '')::numeric, NULLIF($10, ''))
			`, s.ID, i, e.Name, nonNil(e.Roles), e.DateAndTime, e.Location, e.Description,
				nonNil(e.Materials), e.Budget, e.Recurrence)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert snapshot rows: %w", err)
		}

		tag, err := tx.Exec(ctx, `
			DELETE FROM snapshot
			WHERE id NOT IN (
				SELECT id FROM snapshot
				ORDER BY saved_at DESC
				LIMIT (SELECT keep_count FROM snapshot_retention)
			)
		`)
		if err != nil {
			return fmt.Errorf("failed to prune old snapshots: %w", err)
		}
		if pruned := tag.RowsAffected(); pruned > 0 {
			d.logger.Debug("Pruned old snapshots", zap.Int64("count", pruned))
		}
		return nil
	})
	if err != nil {
		return err
	}

	d.logger.Debug("Saved snapshot",
		zap.String("id", s.ID),
		zap.Time("saved_at", s.SavedAt.Truncate(time.Second)),
		zap.Int("volunteers", len(s.Volunteers)),
		zap.Int("events", len(s.Events)))
	return nil
}

// nonNil keeps NOT NULL array columns from receiving NULL
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
