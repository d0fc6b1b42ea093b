package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/volunteer-manager/pkg/core/commands"
	"github.com/jakechorley/volunteer-manager/pkg/core/model"
)

func TestParse_Dispatch(t *testing.T) {
	tests := []struct {
		input string
		want  commands.Command
	}{
		{input: "vlist", want: commands.VolunteerListCommand{}},
		{input: "vlist 3", want: commands.VolunteerListCommand{}},
		{input: "  vclear  ", want: commands.VolunteerClearCommand{}},
		{input: "elist", want: commands.EventListCommand{}},
		{input: "eclear 1", want: commands.EventClearCommand{}},
		{input: "help", want: commands.HelpCommand{}},
		{input: "exit now", want: commands.ExitCommand{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_EmptyAndUnknown(t *testing.T) {
	_, err := Parse("   ")
	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.Equal(t, fmt.Sprintf(MessageInvalidCommandFormat, commands.HelpUsage), err.Error())

	_, err = Parse("vjump 1")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Equal(t, MessageUnknownCommand, err.Error())

	// Command words are case sensitive
	_, err = Parse("VLIST")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestParse_VolunteerCreate(t *testing.T) {
	cmd, err := Parse("vcreate n:Alice Pauline p:94351253 e:alice@example.com a:123, Jurong West Ave 6 s:driving s:firstaid s:driving")
	require.NoError(t, err)

	create, ok := cmd.(commands.VolunteerCreateCommand)
	require.True(t, ok)

	v := create.Volunteer
	assert.Equal(t, "Alice Pauline", v.Name().String())
	assert.Equal(t, "94351253", v.Phone().String())
	assert.Equal(t, "alice@example.com", v.Email().String())
	assert.Equal(t, "123, Jurong West Ave 6", v.Address().String())
	require.Len(t, v.Skills(), 2)
	assert.Equal(t, "driving", v.Skills()[0].String())
}

func TestParse_VolunteerCreateErrors(t *testing.T) {
	usage := fmt.Sprintf(MessageInvalidCommandFormat, commands.VolunteerCreateUsage)

	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing address",
			input:   "vcreate n:Alice p:94351253 e:alice@example.com",
			wantErr: ErrInvalidFormat,
			wantMsg: usage,
		},
		{
			name:    "non-empty preamble",
			input:   "vcreate hello n:Alice p:94351253 e:alice@example.com a:Street",
			wantErr: ErrInvalidFormat,
			wantMsg: usage,
		},
		{
			name:    "repeated single-valued fields",
			input:   "vcreate n:Alice n:Bob p:94351253 e:alice@example.com a:Street a:Road",
			wantErr: ErrInvalidFormat,
			wantMsg: MessageDuplicateFields + "n: a:",
		},
		{
			name:    "invalid name",
			input:   "vcreate n:R@chel p:94351253 e:alice@example.com a:Street",
			wantErr: model.ErrValidation,
			wantMsg: model.NameConstraints,
		},
		{
			name:    "invalid phone",
			input:   "vcreate n:Alice p:+651234 e:alice@example.com a:Street",
			wantErr: model.ErrValidation,
			wantMsg: model.PhoneConstraints,
		},
		{
			name:    "invalid email",
			input:   "vcreate n:Alice p:94351253 e:alice!example.com a:Street",
			wantErr: model.ErrValidation,
			wantMsg: model.EmailConstraints,
		},
		{
			name:    "invalid skill",
			input:   "vcreate n:Alice p:94351253 e:alice@example.com a:Street s:first aid",
			wantErr: model.ErrValidation,
			wantMsg: model.SkillConstraints,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestParse_VolunteerEdit(t *testing.T) {
	cmd, err := Parse("vedit 2 p:91234567 s:")
	require.NoError(t, err)

	edit, ok := cmd.(commands.VolunteerEditCommand)
	require.True(t, ok)

	assert.Equal(t, 1, edit.Index.ZeroBased())
	require.NotNil(t, edit.Descriptor.Phone)
	assert.Equal(t, "91234567", edit.Descriptor.Phone.String())
	require.NotNil(t, edit.Descriptor.Skills)
	assert.Empty(t, *edit.Descriptor.Skills)
	assert.Nil(t, edit.Descriptor.Name)
}

func TestParse_VolunteerEditErrors(t *testing.T) {
	usage := fmt.Sprintf(MessageInvalidCommandFormat, commands.VolunteerEditUsage)

	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{name: "no index", input: "vedit p:91234567", wantMsg: usage},
		{name: "zero index", input: "vedit 0 p:91234567", wantMsg: usage},
		{name: "negative index", input: "vedit -1 p:91234567", wantMsg: usage},
		{name: "signed index", input: "vedit +1 p:91234567", wantMsg: usage},
		{name: "text index", input: "vedit one p:91234567", wantMsg: usage},
		{name: "nothing to edit", input: "vedit 1", wantMsg: commands.MessageNotEdited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFormat)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestParse_DeleteAndFind(t *testing.T) {
	cmd, err := Parse("vdelete 3")
	require.NoError(t, err)
	assert.Equal(t, 2, cmd.(commands.VolunteerDeleteCommand).Index.ZeroBased())

	cmd, err = Parse("edelete 1")
	require.NoError(t, err)
	assert.Equal(t, 0, cmd.(commands.EventDeleteCommand).Index.ZeroBased())

	_, err = Parse("vdelete")
	assert.Equal(t, fmt.Sprintf(MessageInvalidCommandFormat, commands.VolunteerDeleteUsage), err.Error())
	_, err = Parse("edelete 1 2")
	assert.Equal(t, fmt.Sprintf(MessageInvalidCommandFormat, commands.EventDeleteUsage), err.Error())

	cmd, err = Parse("vfind  Alice   Bob ")
	require.NoError(t, err)
	assert.Equal(t, commands.VolunteerFindCommand{
		Predicate: model.NameContainsKeywords{Keywords: []string{"Alice", "Bob"}},
	}, cmd)

	cmd, err = Parse("efind cleanup")
	require.NoError(t, err)
	assert.Equal(t, commands.EventFindCommand{
		Predicate: model.NameContainsKeywords{Keywords: []string{"cleanup"}},
	}, cmd)

	_, err = Parse("vfind   ")
	assert.Equal(t, fmt.Sprintf(MessageInvalidCommandFormat, commands.VolunteerFindUsage), err.Error())
	_, err = Parse("efind")
	assert.Equal(t, fmt.Sprintf(MessageInvalidCommandFormat, commands.EventFindUsage), err.Error())
}

func TestParse_EventCreate(t *testing.T) {
	cmd, err := Parse("ecreate n:Clean up at Orchard r:Cleaner r:Manager dt:23/10/2023 1500 " +
		"l:Orchard Road dsc:Cleaning up Orchard Road! m:Trash bag m:Tongs b:50 rr:FREQ=WEEKLY;BYDAY=MO")
	require.NoError(t, err)

	create, ok := cmd.(commands.EventCreateCommand)
	require.True(t, ok)

	e := create.Event
	assert.Equal(t, "Clean up at Orchard", e.Name().String())
	assert.Len(t, e.Roles(), 2)
	assert.Equal(t, "23/10/2023 1500", e.DateAndTime().String())
	assert.Equal(t, "Orchard Road", e.Location().String())
	assert.Equal(t, "Cleaning up Orchard Road!", e.Description().String())
	assert.Len(t, e.Materials(), 2)

	b, ok := e.Budget()
	require.True(t, ok)
	assert.Equal(t, "50.00", b.String())
	r, ok := e.Recurrence()
	require.True(t, ok)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=MO", r.String())
}

func TestParse_EventCreateOptionalFieldsAbsent(t *testing.T) {
	cmd, err := Parse("ecreate n:Food Drive r:Packer dt:01/12/2023 0900 l:Town Hall dsc:Packing food")
	require.NoError(t, err)

	e := cmd.(commands.EventCreateCommand).Event
	assert.Empty(t, e.Materials())
	_, ok := e.Budget()
	assert.False(t, ok)
	_, ok = e.Recurrence()
	assert.False(t, ok)
}

func TestParse_EventCreateErrors(t *testing.T) {
	usage := fmt.Sprintf(MessageInvalidCommandFormat, commands.EventCreateUsage)

	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing role",
			input:   "ecreate n:Food Drive dt:01/12/2023 0900 l:Town Hall dsc:Packing food",
			wantErr: ErrInvalidFormat,
			wantMsg: usage,
		},
		{
			name:    "repeated budget",
			input:   "ecreate n:Food Drive r:Packer dt:01/12/2023 0900 l:Town Hall dsc:Packing food b:1 b:2",
			wantErr: ErrInvalidFormat,
			wantMsg: MessageDuplicateFields + "b:",
		},
		{
			name:    "bad date",
			input:   "ecreate n:Food Drive r:Packer dt:2023-12-01 l:Town Hall dsc:Packing food",
			wantErr: model.ErrValidation,
			wantMsg: model.DateAndTimeConstraints,
		},
		{
			name:    "bad budget",
			input:   "ecreate n:Food Drive r:Packer dt:01/12/2023 0900 l:Town Hall dsc:Packing food b:-5",
			wantErr: model.ErrValidation,
			wantMsg: model.BudgetConstraints,
		},
		{
			name:    "bad recurrence",
			input:   "ecreate n:Food Drive r:Packer dt:01/12/2023 0900 l:Town Hall dsc:Packing food rr:sometimes",
			wantErr: model.ErrValidation,
			wantMsg: model.RecurrenceConstraints,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestParse_EventEdit(t *testing.T) {
	cmd, err := Parse("eedit 1 l:Marina Bay b:80.00 m:")
	require.NoError(t, err)

	edit := cmd.(commands.EventEditCommand)
	assert.Equal(t, 0, edit.Index.ZeroBased())
	require.NotNil(t, edit.Descriptor.Location)
	assert.Equal(t, "Marina Bay", edit.Descriptor.Location.String())
	require.NotNil(t, edit.Descriptor.Budget)
	assert.Equal(t, "80.00", edit.Descriptor.Budget.String())
	require.NotNil(t, edit.Descriptor.Materials)
	assert.Empty(t, *edit.Descriptor.Materials)
	assert.Nil(t, edit.Descriptor.Roles)

	// Roles are mandatory, so they cannot be cleared
	_, err = Parse("eedit 1 r:")
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = Parse("eedit 1")
	assert.Equal(t, commands.MessageNotEdited, err.Error())
}

func TestParse_CreateTextRoundTrips(t *testing.T) {
	inputs := []string{
		"vcreate n:Alice Pauline p:94351253 e:alice@example.com a:123, Jurong West Ave 6, #08-111 s:driving s:firstaid",
		"vcreate n:Bob p:98765432 e:bob@example.com a:Blk 30 Geylang Street 29",
		"ecreate n:Clean up at Orchard r:Cleaner r:Manager dt:23/10/2023 1500 l:Orchard Road " +
			"dsc:Cleaning up Orchard Road! m:Trash bag m:Tongs b:50.00 rr:FREQ=WEEKLY;BYDAY=MO",
		"ecreate n:Food Drive r:Packer dt:01/12/2023 0900 l:Town Hall dsc:Packing food",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			cmd, err := Parse(input)
			require.NoError(t, err)

			switch c := cmd.(type) {
			case commands.VolunteerCreateCommand:
				again, err := Parse(commands.VolunteerCreateText(c.Volunteer))
				require.NoError(t, err)
				assert.True(t, c.Volunteer.Equal(again.(commands.VolunteerCreateCommand).Volunteer))
			case commands.EventCreateCommand:
				again, err := Parse(commands.EventCreateText(c.Event))
				require.NoError(t, err)
				assert.True(t, c.Event.Equal(again.(commands.EventCreateCommand).Event))
			default:
				t.Fatalf("unexpected command %T", cmd)
			}
		})
	}
}
