package commands

import (
	"strings"

	"github.com/jakechorley/volunteer-manager/pkg/core/model"
)

const (
	MessageInvalidVolunteerDisplayedIndex = "The volunteer index provided is invalid"
	MessageInvalidEventDisplayedIndex     = "The event index provided is invalid"
	MessageVolunteersListedOverview       = "%d volunteers listed!"
	MessageEventsListedOverview           = "%d events listed!"
)

// FormatVolunteer renders a volunteer for result messages
func FormatVolunteer(v model.Volunteer) string {
	var sb strings.Builder
	sb.WriteString(v.Name().String())
	sb.WriteString("; Phone: ")
	sb.WriteString(v.Phone().String())
	sb.WriteString("; Email: ")
	sb.WriteString(v.Email().String())
	sb.WriteString("; Address: ")
	sb.WriteString(v.Address().String())
	sb.WriteString("; Skills: ")
	writeSet(&sb, v.Skills())
	return sb.String()
}

// FormatEvent renders an event for result messages
// Budget and recurrence are only shown when set
func FormatEvent(e model.Event) string {
	var sb strings.Builder
	sb.WriteString(e.Name().String())
	sb.WriteString("; Roles: ")
	writeSet(&sb, e.Roles())
	sb.WriteString("; Date and time: ")
	sb.WriteString(e.DateAndTime().String())
	sb.WriteString("; Location: ")
	sb.WriteString(e.Location().String())
	sb.WriteString("; Description: ")
	sb.WriteString(e.Description().String())
	sb.WriteString("; Materials: ")
	writeSet(&sb, e.Materials())
	if b, ok := e.Budget(); ok {
		sb.WriteString("; Budget: ")
		sb.WriteString(b.String())
	}
	if r, ok := e.Recurrence(); ok {
		sb.WriteString("; Repeats: ")
		sb.WriteString(r.String())
	}
	return sb.String()
}

func writeSet[T interface{ String() string }](sb *strings.Builder, values []T) {
	for _, v := range values {
		sb.WriteString("[")
		sb.WriteString(v.String())
		sb.WriteString("]")
	}
}

// VolunteerCreateText returns the vcreate command line that recreates v
func VolunteerCreateText(v model.Volunteer) string {
	parts := []string{
		VolunteerCreateWord,
		field(PrefixName, v.Name()),
		field(PrefixPhone, v.Phone()),
		field(PrefixEmail, v.Email()),
		field(PrefixAddress, v.Address()),
	}
	for _, s := range v.Skills() {
		parts = append(parts, field(PrefixSkill, s))
	}
	return strings.Join(parts, " ")
}

// EventCreateText returns the ecreate command line that recreates e
func EventCreateText(e model.Event) string {
	parts := []string{EventCreateWord, field(PrefixName, e.Name())}
	for _, r := range e.Roles() {
		parts = append(parts, field(PrefixRole, r))
	}
	parts = append(parts,
		field(PrefixDateAndTime, e.DateAndTime()),
		field(PrefixLocation, e.Location()),
		field(PrefixDescription, e.Description()),
	)
	for _, m := range e.Materials() {
		parts = append(parts, field(PrefixMaterial, m))
	}
	if b, ok := e.Budget(); ok {
		parts = append(parts, field(PrefixBudget, b))
	}
	if r, ok := e.Recurrence(); ok {
		parts = append(parts, field(PrefixRecurrence, r))
	}
	return strings.Join(parts, " ")
}

func field(p Prefix, value interface{ String() string }) string {
	return p.String() + value.String()
}
