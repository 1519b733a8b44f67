package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Run("creates the file and applies migrations", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "tracker.db")

		db, err := Open(path)
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })

		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)

		for _, table := range []string{"progression", "jobs", "daily_tasks", "contacts", "achievements"} {
			assert.True(t, db.Migrator().HasTable(table), table)
		}

		version, err := db.SchemaVersion()
		require.NoError(t, err)
		assert.Equal(t, int64(2), version)

		assert.NoError(t, db.Ping(context.Background()))
	})

	t.Run("reopening is idempotent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tracker.db")

		first, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, first.Close())

		second, err := Open(path)
		require.NoError(t, err)
		t.Cleanup(func() { _ = second.Close() })

		version, err := second.SchemaVersion()
		require.NoError(t, err)
		assert.Equal(t, int64(2), version)
	})

	t.Run("ping fails after close", func(t *testing.T) {
		db, err := Open(filepath.Join(t.TempDir(), "tracker.db"))
		require.NoError(t, err)
		require.NoError(t, db.Close())

		assert.Error(t, db.Ping(context.Background()))
	})
}
