package model

import (
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/teambition/rrule-go"
)

const (
	RoleConstraints        = "Roles should only contain alphanumeric characters and spaces, and it should not be blank"
	DateAndTimeConstraints = "Date and time should be in the format dd/MM/yyyy HHmm, e.g. 23/10/2023 1500"
	LocationConstraints    = "Locations can take any values, and it should not be blank"
	DescriptionConstraints = "Descriptions can take any values, should not be blank and should be at most 500 characters long"
	MaterialConstraints    = "Materials can take any values, and it should not be blank"
	BudgetConstraints      = "Budget should be a non-negative amount with at most 2 decimal places, e.g. 50.00"
	RecurrenceConstraints  = "Recurrence should be a valid RRULE repeating at most daily, e.g. FREQ=WEEKLY;BYDAY=SA"

	// DateAndTimeLayout is the layout events are entered and displayed in
	DateAndTimeLayout = "02/01/2006 1504"

	maxDescriptionLength = 500
)

var rolePattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)

// Role is a role an event needs filled, e.g. "Cleaner"
type Role struct {
	value string
}

// NewRole validates raw as a role
func NewRole(raw string) (Role, error) {
	if !rolePattern.MatchString(raw) {
		return Role{}, invalid("role", raw, RoleConstraints)
	}
	return Role{value: raw}, nil
}

func (r Role) String() string {
	return r.value
}

// NewRoles validates every raw value, dropping repeats
func NewRoles(raws []string) ([]Role, error) {
	return newSet(raws, NewRole)
}

// DateAndTime is when an event starts, to the minute
type DateAndTime struct {
	value time.Time
}

// NewDateAndTime parses raw using DateAndTimeLayout
// The input must already be in canonical form, so "1/2/2023 900" is rejected
func NewDateAndTime(raw string) (DateAndTime, error) {
	t, err := time.Parse(DateAndTimeLayout, raw)
	if err != nil || t.Format(DateAndTimeLayout) != raw {
		return DateAndTime{}, invalid("date and time", raw, DateAndTimeConstraints)
	}
	return DateAndTime{value: t}, nil
}

// Time returns the parsed time in UTC
func (d DateAndTime) Time() time.Time {
	return d.value
}

func (d DateAndTime) String() string {
	return d.value.Format(DateAndTimeLayout)
}

// Location is where an event takes place
type Location struct {
	value string
}

// NewLocation validates raw as a location
func NewLocation(raw string) (Location, error) {
	if isBlank(raw) {
		return Location{}, invalid("location", raw, LocationConstraints)
	}
	return Location{value: raw}, nil
}

func (l Location) String() string {
	return l.value
}

// Description is free text describing an event
type Description struct {
	value string
}

// NewDescription validates raw as a description
func NewDescription(raw string) (Description, error) {
	if isBlank(raw) || utf8.RuneCountInString(raw) > maxDescriptionLength {
		return Description{}, invalid("description", raw, DescriptionConstraints)
	}
	return Description{value: raw}, nil
}

func (d Description) String() string {
	return d.value
}

// Material is an item that needs to be brought to an event
type Material struct {
	value string
}

// NewMaterial validates raw as a material
func NewMaterial(raw string) (Material, error) {
	if isBlank(raw) {
		return Material{}, invalid("material", raw, MaterialConstraints)
	}
	return Material{value: raw}, nil
}

func (m Material) String() string {
	return m.value
}

// NewMaterials validates every raw value, dropping repeats
func NewMaterials(raws []string) ([]Material, error) {
	return newSet(raws, NewMaterial)
}

// Budget is the money set aside for an event
type Budget struct {
	amount decimal.Decimal
}

// NewBudget parses raw as a non-negative decimal amount with at most two decimal places
func NewBudget(raw string) (Budget, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.IsNegative() || amount.Exponent() < -2 {
		return Budget{}, invalid("budget", raw, BudgetConstraints)
	}
	return Budget{amount: amount}, nil
}

// Amount returns the budget as a decimal
func (b Budget) Amount() decimal.Decimal {
	return b.amount
}

// Equal compares amounts numerically, so 50 equals 50.00
func (b Budget) Equal(other Budget) bool {
	return b.amount.Equal(other.amount)
}

func (b Budget) String() string {
	return b.amount.StringFixed(2)
}

// Recurrence is an RFC 5545 recurrence rule for a repeating event
type Recurrence struct {
	rule string
}

// NewRecurrence validates raw as an RRULE
// Only DAILY or coarser frequencies are accepted
func NewRecurrence(raw string) (Recurrence, error) {
	if isBlank(raw) {
		return Recurrence{}, invalid("recurrence", raw, RecurrenceConstraints)
	}
	opt, err := rrule.StrToROption(raw)
	if err != nil || opt.Freq > rrule.DAILY {
		return Recurrence{}, invalid("recurrence", raw, RecurrenceConstraints)
	}
	if _, err := rrule.NewRRule(*opt); err != nil {
		return Recurrence{}, invalid("recurrence", raw, RecurrenceConstraints)
	}
	return Recurrence{rule: raw}, nil
}

// NextAfter returns the first occurrence strictly after from, counting start as the first occurrence
// ok is false when the rule has no further occurrences
func (r Recurrence) NextAfter(start, from time.Time) (next time.Time, ok bool) {
	opt, err := rrule.StrToROption(r.rule)
	if err != nil {
		return time.Time{}, false
	}
	opt.Dtstart = start
	rule, err := rrule.NewRRule(*opt)
	if err != nil {
		return time.Time{}, false
	}
	next = rule.After(from, false)
	return next, !next.IsZero()
}

func (r Recurrence) String() string {
	return r.rule
}
