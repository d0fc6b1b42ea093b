package commands

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakechorley/volunteer-manager/pkg/core/model"
)

func volunteer(t *testing.T, name, phone string, skills ...string) model.Volunteer {
	t.Helper()

	n, err := model.NewName(name)
	require.NoError(t, err)
	p, err := model.NewPhone(phone)
	require.NoError(t, err)
	e, err := model.NewEmail("someone@example.com")
	require.NoError(t, err)
	a, err := model.NewAddress("123, Jurong West Ave 6, #08-111")
	require.NoError(t, err)
	s, err := model.NewSkills(skills)
	require.NoError(t, err)

	return model.NewVolunteer(n, p, e, a, s)
}

func event(t *testing.T, name string, opts ...model.EventOption) model.Event {
	t.Helper()

	n, err := model.NewName(name)
	require.NoError(t, err)
	roles, err := model.NewRoles([]string{"Cleaner", "Manager"})
	require.NoError(t, err)
	dt, err := model.NewDateAndTime("23/10/2023 1500")
	require.NoError(t, err)
	l, err := model.NewLocation("Orchard Road")
	require.NoError(t, err)
	d, err := model.NewDescription("Cleaning up Orchard Road!")
	require.NoError(t, err)
	m, err := model.NewMaterials([]string{"Trash bag", "Tongs"})
	require.NoError(t, err)

	return model.NewEvent(n, roles, dt, l, d, m, opts...)
}

func index(t *testing.T, oneBased int) model.Index {
	t.Helper()

	i, err := model.IndexFromOneBased(oneBased)
	require.NoError(t, err)
	return i
}

func modelWith(t *testing.T, volunteers []model.Volunteer, events []model.Event) *model.Model {
	t.Helper()

	m, err := model.NewModel(volunteers, events, model.DefaultUserPrefs())
	require.NoError(t, err)
	return m
}

func volunteerNames(vs []model.Volunteer) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Name().String()
	}
	return out
}

func eventNames(es []model.Event) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Name().String()
	}
	return out
}
