package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-manager/internal/config"
	"github.com/jakechorley/volunteer-manager/pkg/core/model"
	"github.com/jakechorley/volunteer-manager/pkg/db"
	"github.com/jakechorley/volunteer-manager/pkg/jsonfile"
)

func newTestApp(t *testing.T) (*AppContext, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	return &AppContext{
		Env:    "test",
		Cfg:    config.Default(),
		Store:  jsonfile.NewStore(t.TempDir() + "/volunteers.json"),
		Model:  model.NewEmptyModel(model.DefaultUserPrefs()),
		Logger: zap.NewNop(),
		Ctx:    context.Background(),
		Out:    out,
	}, out
}

func TestRunSession(t *testing.T) {
	app, out := newTestApp(t)
	input := strings.Join([]string{
		"vcreate n:Alice p:98765432 e:alice@example.com a:123 Street",
		"",
		"vcreate n:Alice p:98765432 e:alice@example.com a:123 Street",
		"vdelete 5",
		"exit",
		"vclear",
	}, "\n")

	err := runSession(app, strings.NewReader(input))
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "0 volunteers and 0 events loaded")
	assert.Contains(t, output, "New volunteer added: Alice")
	assert.Contains(t, output, "❌ This volunteer already exists in the volunteer list")
	assert.Contains(t, output, "❌ The volunteer index provided is invalid")
	assert.Contains(t, output, "Exiting as requested ...")
	assert.NotContains(t, output, "Volunteer list has been cleared!", "lines after exit are not run")

	// The session saved through the store
	s, err := app.Store.LoadSnapshot(context.Background())
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Len(t, s.Volunteers, 1)
}

func TestRunSession_QuitAndEndOfInput(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, runSession(app, strings.NewReader("quit\nvclear\n")))
	assert.Contains(t, out.String(), "Goodbye!")

	app, out = newTestApp(t)
	require.NoError(t, runSession(app, strings.NewReader("vlist")))
	assert.Contains(t, out.String(), "Listed all volunteers")
}

func TestRunCmd(t *testing.T) {
	app, out := newTestApp(t)
	cmd := RunCmd(app)
	cmd.SetArgs([]string{"vcreate", "n:Alice", "p:98765432", "e:alice@example.com", "a:123", "Street"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "New volunteer added: Alice")
	require.Len(t, app.Model.Volunteers(), 1)
	assert.Equal(t, "123 Street", app.Model.Volunteers()[0].Address().String())

	cmd.SetArgs([]string{"dance"})
	assert.EqualError(t, cmd.Execute(), "Unknown command")
}

func sampleVolunteers(t *testing.T) []model.Volunteer {
	t.Helper()

	s := &db.Snapshot{Volunteers: []db.VolunteerRecord{
		{Name: "Alice Pauline", Phone: "94351253", Email: "alice@example.com", Address: "123, Jurong West Ave 6", Skills: []string{"driving"}},
		{Name: "Bob", Phone: "999", Email: "bob@example.com", Address: "1 Road", Skills: []string{}},
	}}
	m, err := s.ToModel(model.DefaultUserPrefs())
	require.NoError(t, err)
	return m.Volunteers()
}

func TestPrintVolunteers(t *testing.T) {
	var out bytes.Buffer
	printVolunteers(&out, sampleVolunteers(t), false)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Found 2 volunteers:", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "#  Name"))
	assert.True(t, strings.HasPrefix(lines[4], "1  Alice Pauline  94351253  alice@example.com  123, Jurong West Ave 6  driving"))
	assert.True(t, strings.HasPrefix(lines[5], "2  Bob            999"))
}

func TestPrintVolunteers_AsCommands(t *testing.T) {
	var out bytes.Buffer
	printVolunteers(&out, sampleVolunteers(t), true)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "vcreate n:Alice Pauline"))
}

func TestPrintEvents_DimsPastEvents(t *testing.T) {
	s := &db.Snapshot{Events: []db.EventRecord{
		{Name: "Beach Cleanup", Roles: []string{"Cleaner"}, DateAndTime: "23/10/2023 1500", Location: "Changi Beach",
			Description: "Clearing litter", Materials: []string{}, Budget: "50", Recurrence: "FREQ=WEEKLY"},
		{Name: "Food Drive", Roles: []string{"Packer"}, DateAndTime: "01/10/2023 0900", Location: "Town Hall",
			Description: "Packing food", Materials: []string{}},
	}}
	m, err := s.ToModel(model.DefaultUserPrefs())
	require.NoError(t, err)

	var out bytes.Buffer
	printEvents(&out, m.Events(), time.Date(2023, 11, 1, 12, 0, 0, 0, time.UTC), false)

	output := out.String()
	assert.Contains(t, output, "Found 2 events:")
	assert.Contains(t, output, "06/11/2023 1500")
	assert.Contains(t, output, "50.00")
	assert.Contains(t, output, colorDim+"2  Food Drive")
}

func TestTable_Write(t *testing.T) {
	tbl := newTable("#", "Name")
	tbl.add(false, "1", "Zoë")
	tbl.add(false, "10", "Al")

	var out bytes.Buffer
	tbl.write(&out)

	assert.Equal(t, "#   Name\n--------\n1   Zoë\n10  Al\n", out.String())
}
