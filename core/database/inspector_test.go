package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT, codex_uri TEXT)").Error
	require.NoError(t, err)

	columns, err := TableColumns(db, "items")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	types := make(map[string]string)
	for _, c := range columns {
		types[c.Field] = c.Type
	}
	assert.Equal(t, "integer", types["id"])
	assert.Equal(t, "text", types["codex_uri"])

	// PRAGMA table_info returns nothing for a missing table.
	cols, err := TableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE pets (id INTEGER PRIMARY KEY, name TEXT)").Error)

	missing, err := MissingColumns(db, "pets", []string{"id", "codex_uri", "skills"})
	require.NoError(t, err)
	assert.Equal(t, []string{"codex_uri", "skills"}, missing)
}
