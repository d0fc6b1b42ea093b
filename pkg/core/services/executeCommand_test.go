package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-manager/pkg/core/commands"
	"github.com/jakechorley/volunteer-manager/pkg/core/parser"
)

var nopLogger = zap.NewNop()

const createAlice = "vcreate n:Alice p:98765432 e:alice@example.com a:123 Street"

func TestExecuteCommand_CreateOnEmptyStore(t *testing.T) {
	store := &mockStore{}
	m := emptyModel()

	result, err := ExecuteCommand(context.Background(), store, m, nopLogger, createAlice)
	require.NoError(t, err)

	require.Len(t, m.Volunteers(), 1)
	assert.Equal(t, fmt.Sprintf(commands.MessageVolunteerCreateSuccess, commands.FormatVolunteer(m.Volunteers()[0])), result.Feedback)
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, []string{"Alice"}, store.savedVolunteerNames())
}

func TestExecuteCommand_DuplicateCreate(t *testing.T) {
	store := &mockStore{}
	m := emptyModel()
	run(t, store, m, createAlice)

	_, err := ExecuteCommand(context.Background(), store, m, nopLogger, createAlice)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDuplicateEntity)
	assert.Equal(t, commands.MessageDuplicateVolunteer, err.Error())
	assert.Len(t, m.Volunteers(), 1)
	assert.Equal(t, 1, store.saves, "failed commands are not saved")
}

func TestExecuteCommand_FindThenDeleteThenList(t *testing.T) {
	store := &mockStore{}
	m := emptyModel()
	run(t, store, m,
		"vcreate n:Bob Choo p:22222222 e:bob@example.com a:1 Road",
		createAlice,
		"vfind Alice",
	)
	require.Equal(t, []string{"Alice"}, volunteerNames(m.FilteredVolunteers()))

	_, err := ExecuteCommand(context.Background(), store, m, nopLogger, "vdelete 1")
	require.NoError(t, err)

	result, err := ExecuteCommand(context.Background(), store, m, nopLogger, "vlist")
	require.NoError(t, err)

	assert.Equal(t, commands.MessageVolunteerListSuccess, result.Feedback)
	assert.Equal(t, []string{"Bob Choo"}, volunteerNames(m.FilteredVolunteers()))
	assert.Equal(t, []string{"Bob Choo"}, store.savedVolunteerNames())
	assert.Equal(t, 3, store.saves, "find and list do not save")
}

func TestExecuteCommand_EditResolvesThroughFilteredView(t *testing.T) {
	store := &mockStore{}
	m := emptyModel()
	run(t, store, m,
		"vcreate n:Amy Tan p:11111111 e:amy@example.com a:1 Road",
		"vcreate n:Bob Choo p:22222222 e:bob@example.com a:2 Road",
		"vcreate n:Carl Kurz p:33333333 e:carl@example.com a:3 Road",
		"vfind Carl",
	)

	_, err := ExecuteCommand(context.Background(), store, m, nopLogger, "vedit 1 p:91234567")
	require.NoError(t, err)

	volunteers := m.Volunteers()
	assert.Equal(t, "11111111", volunteers[0].Phone().String())
	assert.Equal(t, "91234567", volunteers[2].Phone().String())
	assert.Equal(t, "91234567", store.snapshot.Volunteers[2].Phone)
}

func TestExecuteCommand_ParseErrors(t *testing.T) {
	store := &mockStore{}

	_, err := ExecuteCommand(context.Background(), store, emptyModel(), nopLogger, "dance")
	assert.ErrorIs(t, err, parser.ErrUnknownCommand)

	_, err = ExecuteCommand(context.Background(), store, emptyModel(), nopLogger, "vcreate n:Alice")
	assert.ErrorIs(t, err, parser.ErrInvalidFormat)

	assert.Zero(t, store.saves)
}

func TestExecuteCommand_SaveFailureKeepsChange(t *testing.T) {
	store := &mockStore{saveErr: errDiskFull}
	m := emptyModel()

	result, err := ExecuteCommand(context.Background(), store, m, nopLogger, createAlice)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSave)
	assert.ErrorIs(t, err, errDiskFull)
	assert.NotEmpty(t, result.Feedback)
	assert.Len(t, m.Volunteers(), 1)
}

func TestExecuteCommand_HelpAndExit(t *testing.T) {
	store := &mockStore{}

	result, err := ExecuteCommand(context.Background(), store, emptyModel(), nopLogger, "help")
	require.NoError(t, err)
	assert.True(t, result.ShowHelp)

	result, err = ExecuteCommand(context.Background(), store, emptyModel(), nopLogger, "exit")
	require.NoError(t, err)
	assert.True(t, result.Exit)

	assert.Zero(t, store.saves)
}

func TestExecuteCommand_EventsAreSaved(t *testing.T) {
	store := &mockStore{}
	m := emptyModel()

	run(t, store, m,
		"ecreate n:Beach Cleanup r:Cleaner dt:23/10/2023 1500 l:Changi Beach dsc:Clearing litter m:Trash bag b:50",
	)

	require.Len(t, store.snapshot.Events, 1)
	assert.Equal(t, "50.00", store.snapshot.Events[0].Budget)
	assert.Equal(t, []string{"Trash bag"}, store.snapshot.Events[0].Materials)
}
