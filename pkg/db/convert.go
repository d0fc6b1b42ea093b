package db

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jakechorley/volunteer-manager/pkg/core/model"
)

// FromModel captures the model's full (unfiltered) lists as a new snapshot
func FromModel(m *model.Model) *Snapshot {
	volunteers := m.Volunteers()
	events := m.Events()

	s := &Snapshot{
		ID:         uuid.New().String(),
		SavedAt:    time.Now().UTC(),
		Volunteers: make([]VolunteerRecord, 0, len(volunteers)),
		Events:     make([]EventRecord, 0, len(events)),
	}

	for _, v := range volunteers {
		s.Volunteers = append(s.Volunteers, VolunteerRecord{
			Name:    v.Name().String(),
			Phone:   v.Phone().String(),
			Email:   v.Email().String(),
			Address: v.Address().String(),
			Skills:  stringsOf(v.Skills()),
		})
	}

	for _, e := range events {
		record := EventRecord{
			Name:        e.Name().String(),
			Roles:       stringsOf(e.Roles()),
			DateAndTime: e.DateAndTime().String(),
			Location:    e.Location().String(),
			Description: e.Description().String(),
			Materials:   stringsOf(e.Materials()),
		}
		if b, ok := e.Budget(); ok {
			record.Budget = b.String()
		}
		if r, ok := e.Recurrence(); ok {
			record.Recurrence = r.String()
		}
		s.Events = append(s.Events, record)
	}

	s.stamp()
	return s
}

// ToModel validates every stored field and rebuilds the model
// Records are ordered by Position before conversion
func (s *Snapshot) ToModel(prefs model.UserPrefs) (*model.Model, error) {
	volunteerRecords := sortedByPosition(s.Volunteers, func(r VolunteerRecord) int { return r.Position })
	eventRecords := sortedByPosition(s.Events, func(r EventRecord) int { return r.Position })

	volunteers := make([]model.Volunteer, 0, len(volunteerRecords))
	for i, r := range volunteerRecords {
		v, err := r.toVolunteer()
		if err != nil {
			return nil, fmt.Errorf("invalid volunteer %d: %w", i+1, err)
		}
		volunteers = append(volunteers, v)
	}

	events := make([]model.Event, 0, len(eventRecords))
	for i, r := range eventRecords {
		e, err := r.toEvent()
		if err != nil {
			return nil, fmt.Errorf("invalid event %d: %w", i+1, err)
		}
		events = append(events, e)
	}

	m, err := model.NewModel(volunteers, events, prefs)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot %s: %w", s.ID, err)
	}
	return m, nil
}

func (r VolunteerRecord) toVolunteer() (model.Volunteer, error) {
	name, err := model.NewName(r.Name)
	if err != nil {
		return model.Volunteer{}, err
	}
	phone, err := model.NewPhone(r.Phone)
	if err != nil {
		return model.Volunteer{}, err
	}
	email, err := model.NewEmail(r.Email)
	if err != nil {
		return model.Volunteer{}, err
	}
	address, err := model.NewAddress(r.Address)
	if err != nil {
		return model.Volunteer{}, err
	}
	skills, err := model.NewSkills(r.Skills)
	if err != nil {
		return model.Volunteer{}, err
	}
	return model.NewVolunteer(name, phone, email, address, skills), nil
}

func (r EventRecord) toEvent() (model.Event, error) {
	name, err := model.NewName(r.Name)
	if err != nil {
		return model.Event{}, err
	}
	roles, err := model.NewRoles(r.Roles)
	if err != nil {
		return model.Event{}, err
	}
	dateAndTime, err := model.NewDateAndTime(r.DateAndTime)
	if err != nil {
		return model.Event{}, err
	}
	location, err := model.NewLocation(r.Location)
	if err != nil {
		return model.Event{}, err
	}
	description, err := model.NewDescription(r.Description)
	if err != nil {
		return model.Event{}, err
	}
	materials, err := model.NewMaterials(r.Materials)
	if err != nil {
		return model.Event{}, err
	}

	var opts []model.EventOption
	if r.Budget != "" {
		budget, err := model.NewBudget(r.Budget)
		if err != nil {
			return model.Event{}, err
		}
		opts = append(opts, model.WithBudget(budget))
	}
	if r.Recurrence != "" {
		recurrence, err := model.NewRecurrence(r.Recurrence)
		if err != nil {
			return model.Event{}, err
		}
		opts = append(opts, model.WithRecurrence(recurrence))
	}

	return model.NewEvent(name, roles, dateAndTime, location, description, materials, opts...), nil
}

func stringsOf[T interface{ String() string }](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

func sortedByPosition[T any](records []T, position func(T) int) []T {
	out := make([]T, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return position(out[i]) < position(out[j])
	})
	return out
}
