package model

import "fmt"

// view pairs a backing list with the predicate that derives its filtered view
type view[T Entity[T]] struct {
	list   *UniqueList[T]
	filter func(T) bool
}

func newView[T Entity[T]](items []T) (view[T], error) {
	list, err := NewUniqueList(items)
	if err != nil {
		return view[T]{}, err
	}
	return view[T]{list: list, filter: ShowAll[T]}, nil
}

// filtered recomputes the view from the backing list, so it always reflects the latest mutation
func (v *view[T]) filtered() []T {
	return v.list.Filter(v.filter)
}

// Model is the in-memory state the commands operate on
// It is the only owner of the volunteer and event lists and their filters
type Model struct {
	volunteers view[Volunteer]
	events     view[Event]
	prefs      UserPrefs
}

// NewModel builds a model from stored volunteers and events
// Both views start unfiltered
func NewModel(volunteers []Volunteer, events []Event, prefs UserPrefs) (*Model, error) {
	vv, err := newView(volunteers)
	if err != nil {
		return nil, fmt.Errorf("invalid volunteer list: %w", err)
	}
	ev, err := newView(events)
	if err != nil {
		return nil, fmt.Errorf("invalid event list: %w", err)
	}
	return &Model{volunteers: vv, events: ev, prefs: prefs}, nil
}

// NewEmptyModel returns a model with no records
func NewEmptyModel(prefs UserPrefs) *Model {
	m, _ := NewModel(nil, nil, prefs)
	return m
}

// UserPrefs returns the model's preferences
func (m *Model) UserPrefs() UserPrefs {
	return m.prefs
}

// SetUserPrefs replaces the model's preferences
func (m *Model) SetUserPrefs(prefs UserPrefs) {
	m.prefs = prefs
}

// Volunteers

// HasVolunteer reports whether a volunteer that is the same as v exists
func (m *Model) HasVolunteer(v Volunteer) bool {
	return m.volunteers.list.Contains(v)
}

// AddVolunteer appends v to the volunteer list
func (m *Model) AddVolunteer(v Volunteer) error {
	return m.volunteers.list.Add(v)
}

// SetVolunteer replaces target with edited in place
func (m *Model) SetVolunteer(target, edited Volunteer) error {
	return m.volunteers.list.Set(target, edited)
}

// DeleteVolunteer removes v from the volunteer list
func (m *Model) DeleteVolunteer(v Volunteer) error {
	return m.volunteers.list.Remove(v)
}

// ClearVolunteers removes every volunteer
func (m *Model) ClearVolunteers() {
	_ = m.volunteers.list.SetAll(nil)
}

// Volunteers returns the backing volunteer list in stored order
func (m *Model) Volunteers() []Volunteer {
	return m.volunteers.list.Items()
}

// FilteredVolunteers returns the volunteers matching the active filter
// Displayed indices refer to positions in this list
func (m *Model) FilteredVolunteers() []Volunteer {
	return m.volunteers.filtered()
}

// UpdateFilteredVolunteers replaces the active volunteer filter; nil shows all
func (m *Model) UpdateFilteredVolunteers(filter func(Volunteer) bool) {
	if filter == nil {
		filter = ShowAll[Volunteer]
	}
	m.volunteers.filter = filter
}

// Events

// HasEvent reports whether an event that is the same as e exists
func (m *Model) HasEvent(e Event) bool {
	return m.events.list.Contains(e)
}

// AddEvent appends e to the event list
func (m *Model) AddEvent(e Event) error {
	return m.events.list.Add(e)
}

// SetEvent replaces target with edited in place
func (m *Model) SetEvent(target, edited Event) error {
	return m.events.list.Set(target, edited)
}

// DeleteEvent removes e from the event list
func (m *Model) DeleteEvent(e Event) error {
	return m.events.list.Remove(e)
}

// ClearEvents removes every event
func (m *Model) ClearEvents() {
	_ = m.events.list.SetAll(nil)
}

// Events returns the backing event list in stored order
func (m *Model) Events() []Event {
	return m.events.list.Items()
}

// FilteredEvents returns the events matching the active filter
func (m *Model) FilteredEvents() []Event {
	return m.events.filtered()
}

// UpdateFilteredEvents replaces the active event filter; nil shows all
func (m *Model) UpdateFilteredEvents(filter func(Event) bool) {
	if filter == nil {
		filter = ShowAll[Event]
	}
	m.events.filter = filter
}

// Equal reports whether both models hold equal records in the same order and the same
// filtered views. Filters themselves are functions and are compared through their output
func (m *Model) Equal(other *Model) bool {
	return m.prefs == other.prefs &&
		equalLists(m.Volunteers(), other.Volunteers()) &&
		equalLists(m.FilteredVolunteers(), other.FilteredVolunteers()) &&
		equalLists(m.Events(), other.Events()) &&
		equalLists(m.FilteredEvents(), other.FilteredEvents())
}

func equalLists[T Entity[T]](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Copy returns an independent model with the same records and filters
func (m *Model) Copy() *Model {
	c, _ := NewModel(m.Volunteers(), m.Events(), m.prefs)
	c.volunteers.filter = m.volunteers.filter
	c.events.filter = m.events.filter
	return c
}
