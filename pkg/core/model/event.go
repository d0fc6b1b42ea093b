package model

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Event represents an activity volunteers can be assigned to
// Events are immutable: edits build a new Event
type Event struct {
	name        Name
	roles       []Role
	dateAndTime DateAndTime
	location    Location
	description Description
	materials   []Material
	budget      *Budget     // nil when no budget was given
	recurrence  *Recurrence // nil for one-off events
}

// EventOption sets one of the optional fields of an event
type EventOption func(*Event)

// WithBudget sets the event budget
func WithBudget(b Budget) EventOption {
	return func(e *Event) { e.budget = &b }
}

// WithRecurrence makes the event repeat according to r
func WithRecurrence(r Recurrence) EventOption {
	return func(e *Event) { e.recurrence = &r }
}

// NewEvent builds an event from validated fields
func NewEvent(name Name, roles []Role, dateAndTime DateAndTime, location Location,
	description Description, materials []Material, opts ...EventOption) Event {
	e := Event{
		name:        name,
		roles:       distinct(roles),
		dateAndTime: dateAndTime,
		location:    location,
		description: description,
		materials:   distinct(materials),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (e Event) Name() Name               { return e.name }
func (e Event) DateAndTime() DateAndTime { return e.dateAndTime }
func (e Event) Location() Location       { return e.location }
func (e Event) Description() Description { return e.description }

// Roles returns a copy of the event's roles in insertion order
func (e Event) Roles() []Role {
	return slices.Clone(e.roles)
}

// Materials returns a copy of the event's materials in insertion order
func (e Event) Materials() []Material {
	return slices.Clone(e.materials)
}

// Budget returns the event budget, ok is false when none was set
func (e Event) Budget() (b Budget, ok bool) {
	if e.budget == nil {
		return Budget{}, false
	}
	return *e.budget, true
}

// Recurrence returns the event's recurrence rule, ok is false for one-off events
func (e Event) Recurrence() (r Recurrence, ok bool) {
	if e.recurrence == nil {
		return Recurrence{}, false
	}
	return *e.recurrence, true
}

// NextOccurrence returns when the event next happens after now
// One-off events only have their own date and time
func (e Event) NextOccurrence(now time.Time) (time.Time, bool) {
	start := e.dateAndTime.Time()
	if e.recurrence == nil {
		return start, start.After(now)
	}
	if start.After(now) {
		return start, true
	}
	return e.recurrence.NextAfter(start, now)
}

// IsSame reports whether both events have the same name
func (e Event) IsSame(other Event) bool {
	return e.name == other.name
}

// Equal reports whether every field matches; role and material order is ignored
func (e Event) Equal(other Event) bool {
	return e.name == other.name &&
		sameSet(e.roles, other.roles) &&
		e.dateAndTime.value.Equal(other.dateAndTime.value) &&
		e.location == other.location &&
		e.description == other.description &&
		sameSet(e.materials, other.materials) &&
		equalBudget(e.budget, other.budget) &&
		equalRecurrence(e.recurrence, other.recurrence)
}

func equalBudget(a, b *Budget) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func equalRecurrence(a, b *Recurrence) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (e Event) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Event{name=%s, roles=%s, dateAndTime=%s, location=%s, description=%s, materials=%s",
		e.name, formatSet(e.roles), e.dateAndTime, e.location, e.description, formatSet(e.materials))
	if e.budget != nil {
		fmt.Fprintf(&sb, ", budget=%s", e.budget)
	}
	if e.recurrence != nil {
		fmt.Fprintf(&sb, ", recurrence=%s", e.recurrence)
	}
	sb.WriteString("}")
	return sb.String()
}
