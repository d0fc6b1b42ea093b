package db

import (
	"fmt"
	"time"
)

// Snapshot is the full saved state of the volunteer and event lists
type Snapshot struct {
	ID         string            `json:"id"`
	SavedAt    time.Time         `json:"saved_at"`
	Volunteers []VolunteerRecord `json:"volunteers"`
	Events     []EventRecord     `json:"events"`
}

// SnapshotRecord represents a database snapshot record
// It is written after the rows it counts, so a snapshot with missing rows can be detected
type SnapshotRecord struct {
	ID             string `ssql_header:"id" ssql_type:"uuid"`
	SavedAt        string `ssql_header:"saved_at" ssql_type:"datetime"`
	VolunteerCount int    `ssql_header:"volunteer_count" ssql_type:"int"`
	EventCount     int    `ssql_header:"event_count" ssql_type:"int"`
}

// VolunteerRecord represents a database volunteer record
type VolunteerRecord struct {
	SnapshotID string   `json:"-" ssql_header:"snapshot_id" ssql_type:"uuid"`
	Position   int      `json:"-" ssql_header:"position" ssql_type:"int"`
	Name       string   `json:"name" ssql_header:"name" ssql_type:"text"`
	Phone      string   `json:"phone" ssql_header:"phone" ssql_type:"text"`
	Email      string   `json:"email" ssql_header:"email" ssql_type:"text"`
	Address    string   `json:"address" ssql_header:"address" ssql_type:"text"`
	Skills     []string `json:"skills" ssql_header:"skills" ssql_type:"list"`
}

// EventRecord represents a database event record
// Budget and Recurrence are empty when the event has none
type EventRecord struct {
	SnapshotID  string   `json:"-" ssql_header:"snapshot_id" ssql_type:"uuid"`
	Position    int      `json:"-" ssql_header:"position" ssql_type:"int"`
	Name        string   `json:"name" ssql_header:"name" ssql_type:"text"`
	Roles       []string `json:"roles" ssql_header:"roles" ssql_type:"list"`
	DateAndTime string   `json:"date_and_time" ssql_header:"date_and_time" ssql_type:"text"`
	Location    string   `json:"location" ssql_header:"location" ssql_type:"text"`
	Description string   `json:"description" ssql_header:"description" ssql_type:"text"`
	Materials   []string `json:"materials" ssql_header:"materials" ssql_type:"list"`
	Budget      string   `json:"budget,omitempty" ssql_header:"budget" ssql_type:"decimal"`
	Recurrence  string   `json:"recurrence,omitempty" ssql_header:"recurrence" ssql_type:"text"`
}

// Record returns the snapshot's summary row
func (s *Snapshot) Record() SnapshotRecord {
	return SnapshotRecord{
		ID:             s.ID,
		SavedAt:        s.SavedAt.UTC().Format(time.RFC3339),
		VolunteerCount: len(s.Volunteers),
		EventCount:     len(s.Events),
	}
}

// stamp sets the snapshot id and list position on every record
func (s *Snapshot) stamp() {
	for i := range s.Volunteers {
		s.Volunteers[i].SnapshotID = s.ID
		s.Volunteers[i].Position = i
	}
	for i := range s.Events {
		s.Events[i].SnapshotID = s.ID
		s.Events[i].Position = i
	}
}

func parseSavedAt(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid saved_at %q: %w", raw, err)
	}
	return t, nil
}
