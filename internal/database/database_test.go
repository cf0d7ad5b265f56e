package database

import (
	"testing"

	"github.com/mauv0809/swiss-tournament/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesSchema(t *testing.T) {
	db, teardown, err := InitDB(config.DatabaseConfig{Driver: config.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	for _, table := range []string{"players", "matches"} {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "Querying for %s table should not produce an error", table)
		assert.Equal(t, table, name)
	}

	var view string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='view' AND name='player_standings'").Scan(&view)
	require.NoError(t, err)
	assert.Equal(t, "player_standings", view)
}

func TestInitDB_EnforcesForeignKeys(t *testing.T) {
	db, teardown, err := InitDB(config.DatabaseConfig{Driver: config.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	defer teardown()

	_, err = db.Exec("INSERT INTO matches (player_1_id, player_2_id, winner) VALUES (1, 2, 1)")
	assert.Error(t, err, "a match must not reference unknown players")
}

func TestInitDB_UnsupportedDriver(t *testing.T) {
	db, teardown, err := InitDB(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Nil(t, teardown)
}
