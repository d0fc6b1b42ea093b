package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakechorley/volunteer-manager/pkg/core/model"
	"github.com/jakechorley/volunteer-manager/pkg/db"
)

// mockStore is an in-memory db.SnapshotStore
type mockStore struct {
	snapshot *db.Snapshot
	saves    int
	loadErr  error
	saveErr  error
}

func (s *mockStore) LoadSnapshot(ctx context.Context) (*db.Snapshot, error) {
	return s.snapshot, s.loadErr
}

func (s *mockStore) SaveSnapshot(ctx context.Context, snapshot *db.Snapshot) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.snapshot = snapshot
	s.saves++
	return nil
}

var errDiskFull = errors.New("disk full")

// savedVolunteerNames returns the volunteer names in the last saved snapshot
func (s *mockStore) savedVolunteerNames() []string {
	if s.snapshot == nil {
		return nil
	}
	names := make([]string, len(s.snapshot.Volunteers))
	for i, v := range s.snapshot.Volunteers {
		names[i] = v.Name
	}
	return names
}

func volunteerNames(volunteers []model.Volunteer) []string {
	names := make([]string, len(volunteers))
	for i, v := range volunteers {
		names[i] = v.Name().String()
	}
	return names
}

func emptyModel() *model.Model {
	return model.NewEmptyModel(model.DefaultUserPrefs())
}

// run executes each line and fails the test on any error
func run(t *testing.T, store *mockStore, m *model.Model, lines ...string) {
	t.Helper()

	for _, line := range lines {
		_, err := ExecuteCommand(context.Background(), store, m, nopLogger, line)
		require.NoError(t, err, line)
	}
}
