package postgres

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_Sorted(t *testing.T) {
	files, err := migrationFiles()
	require.NoError(t, err)

	require.NotEmpty(t, files)
	assert.Equal(t, "001_create_snapshots.sql", files[0])
	assert.IsIncreasing(t, files)
}

func TestMigrations_CreateSnapshotTables(t *testing.T) {
	content, err := fs.ReadFile(migrationsFS, "migrations/001_create_snapshots.sql")
	require.NoError(t, err)

	for _, table := range []string{"snapshot", "volunteer", "event"} {
		assert.True(t, strings.Contains(string(content), "CREATE TABLE IF NOT EXISTS "+table+" ("),
			"missing table %s", table)
	}
}

func TestNonNil(t *testing.T) {
	assert.Equal(t, []string{}, nonNil(nil))
	assert.Equal(t, []string{"a"}, nonNil([]string{"a"}))
}
