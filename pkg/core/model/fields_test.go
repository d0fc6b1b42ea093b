package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldValidation(t *testing.T) {
	tests := []struct {
		name       string
		parse      func(string) error
		valid      []string
		invalid    []string
		constraint string
	}{
		{
			name:       "name",
			parse:      func(s string) error { _, err := NewName(s); return err },
			valid:      []string{"Alice", "Alice Pauline", "Peter the 2nd", "12345", strings.Repeat("a", 100)},
			invalid:    []string{"", " ", " Alice", "R@chel", "peter*", strings.Repeat("a", 101)},
			constraint: NameConstraints,
		},
		{
			name:       "phone",
			parse:      func(s string) error { _, err := NewPhone(s); return err },
			valid:      []string{"911", "93121534", "124293842033123"},
			invalid:    []string{"", "91", "phone", "9011p041", "9312 1534"},
			constraint: PhoneConstraints,
		},
		{
			name:       "email",
			parse:      func(s string) error { _, err := NewEmail(s); return err },
			valid:      []string{"alice@example.com", "peter_jack@very-very-very-long-example.com", "a1+be.d@example1.com"},
			invalid:    []string{"", "@example.com", "peterjackexample.com", "peterjack@", "peter jack@example.com"},
			constraint: EmailConstraints,
		},
		{
			name:       "address",
			parse:      func(s string) error { _, err := NewAddress(s); return err },
			valid:      []string{"Blk 456, Den Road, #01-355", "-"},
			invalid:    []string{"", "   "},
			constraint: AddressConstraints,
		},
		{
			name:       "skill",
			parse:      func(s string) error { _, err := NewSkill(s); return err },
			valid:      []string{"firstaid", "driving2"},
			invalid:    []string{"", "first aid", "#cooking"},
			constraint: SkillConstraints,
		},
		{
			name:       "role",
			parse:      func(s string) error { _, err := NewRole(s); return err },
			valid:      []string{"Cleaner", "Event Manager"},
			invalid:    []string{"", " Cleaner", "Cleaner!"},
			constraint: RoleConstraints,
		},
		{
			name:       "date and time",
			parse:      func(s string) error { _, err := NewDateAndTime(s); return err },
			valid:      []string{"23/10/2023 1500", "29/02/2024 0000"},
			invalid:    []string{"", "23/10/2023", "1/2/2023 900", "32/01/2023 1000", "29/02/2023 1000", "23/10/2023 2460"},
			constraint: DateAndTimeConstraints,
		},
		{
			name:       "location",
			parse:      func(s string) error { _, err := NewLocation(s); return err },
			valid:      []string{"Orchard Road"},
			invalid:    []string{"", "  "},
			constraint: LocationConstraints,
		},
		{
			name:       "description",
			parse:      func(s string) error { _, err := NewDescription(s); return err },
			valid:      []string{"Cleaning up!", strings.Repeat("x", 500)},
			invalid:    []string{"", strings.Repeat("x", 501)},
			constraint: DescriptionConstraints,
		},
		{
			name:       "material",
			parse:      func(s string) error { _, err := NewMaterial(s); return err },
			valid:      []string{"Trash bag", "Tongs (x20)"},
			invalid:    []string{"", " "},
			constraint: MaterialConstraints,
		},
		{
			name:       "budget",
			parse:      func(s string) error { _, err := NewBudget(s); return err },
			valid:      []string{"0", "50", "50.5", "50.00"},
			invalid:    []string{"", "abc", "-1", "1.234"},
			constraint: BudgetConstraints,
		},
		{
			name:       "recurrence",
			parse:      func(s string) error { _, err := NewRecurrence(s); return err },
			valid:      []string{"FREQ=WEEKLY;BYDAY=SA", "FREQ=MONTHLY;COUNT=3", "FREQ=DAILY", "FREQ=YEARLY"},
			invalid:    []string{"", "weekly", "FREQ=SOMETIMES", "FREQ=HOURLY", "FREQ=MINUTELY;COUNT=5", "FREQ=SECONDLY"},
			constraint: RecurrenceConstraints,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.valid {
				assert.NoError(t, tt.parse(v), "expected %q to be valid", v)
			}
			for _, v := range tt.invalid {
				err := tt.parse(v)
				require.Error(t, err, "expected %q to be invalid", v)
				assert.True(t, errors.Is(err, ErrValidation))
				assert.Equal(t, tt.constraint, err.Error())
			}
		})
	}
}

func TestNewSkills_DropsRepeats(t *testing.T) {
	skills, err := NewSkills([]string{"driving", "firstaid", "driving"})
	require.NoError(t, err)

	require.Len(t, skills, 2)
	assert.Equal(t, "driving", skills[0].String())
	assert.Equal(t, "firstaid", skills[1].String())
}

func TestNewSkills_FailsOnAnyInvalidValue(t *testing.T) {
	_, err := NewSkills([]string{"driving", "first aid"})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "skill", validationErr.Field)
	assert.Equal(t, "first aid", validationErr.Value)
}

func TestBudget_StringAndEquality(t *testing.T) {
	whole, err := NewBudget("50")
	require.NoError(t, err)
	fixed, err := NewBudget("50.00")
	require.NoError(t, err)

	assert.Equal(t, "50.00", whole.String())
	assert.True(t, whole.Equal(fixed))
}

func TestDateAndTime_StringRoundTrips(t *testing.T) {
	dt, err := NewDateAndTime("05/01/2024 0930")
	require.NoError(t, err)

	assert.Equal(t, "05/01/2024 0930", dt.String())
	assert.Equal(t, 2024, dt.Time().Year())
	assert.Equal(t, 9, dt.Time().Hour())
}

func TestIndex(t *testing.T) {
	one, err := IndexFromOneBased(1)
	require.NoError(t, err)
	assert.Equal(t, 0, one.ZeroBased())
	assert.Equal(t, "1", one.String())

	zero, err := IndexFromZeroBased(0)
	require.NoError(t, err)
	assert.Equal(t, one, zero)

	_, err = IndexFromOneBased(0)
	assert.Error(t, err)
	_, err = IndexFromZeroBased(-1)
	assert.Error(t, err)
}
