package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustVolunteer(t *testing.T, name, phone string, skills ...string) Volunteer {
	t.Helper()

	n, err := NewName(name)
	require.NoError(t, err)
	p, err := NewPhone(phone)
	require.NoError(t, err)
	e, err := NewEmail("someone@example.com")
	require.NoError(t, err)
	a, err := NewAddress("123, Jurong West Ave 6, #08-111")
	require.NoError(t, err)
	s, err := NewSkills(skills)
	require.NoError(t, err)

	return NewVolunteer(n, p, e, a, s)
}

func mustEvent(t *testing.T, name, dateAndTime string, opts ...EventOption) Event {
	t.Helper()

	n, err := NewName(name)
	require.NoError(t, err)
	roles, err := NewRoles([]string{"Cleaner"})
	require.NoError(t, err)
	dt, err := NewDateAndTime(dateAndTime)
	require.NoError(t, err)
	l, err := NewLocation("Orchard Road")
	require.NoError(t, err)
	d, err := NewDescription("Cleaning up Orchard Road!")
	require.NoError(t, err)
	m, err := NewMaterials([]string{"Trash bag"})
	require.NoError(t, err)

	return NewEvent(n, roles, dt, l, d, m, opts...)
}

func names[T interface{ Name() Name }](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name().String()
	}
	return out
}
