package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenWithAutoMigrate(t *testing.T) {
	config := DefaultConfig(filepath.Join(t.TempDir(), "catalog.db"))
	config.AutoMigrate = true

	db, err := Open(config)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Ping())

	// The catalog tables exist after migration.
	for _, table := range []string{"archetype_rules", "archetype_fallbacks"} {
		var name string
		err := db.Conn().QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestOpenNilConfig(t *testing.T) {
	_, err := Open(nil)
	assert.Error(t, err)
}

func TestMigrateIsIdempotent(t *testing.T) {
	config := DefaultConfig(filepath.Join(t.TempDir(), "catalog.db"))
	db, err := Open(config)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db.Conn()))
	require.NoError(t, Migrate(db.Conn()))
}
