package database

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func initializeMigratedDatabase(t *testing.T, dir string) *Database {
	database := NewDatabase()
	require.Nil(t, database.InitializeForDirectory(dir, "test.db"))
	_, err := database.Migrate()
	require.Nil(t, err)
	return database
}
