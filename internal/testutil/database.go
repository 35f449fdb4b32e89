// Package testutil provides testing utilities for database integration tests.
//
// Database Setup:
//
//	db := testutil.SetupSQLiteDB(t)
//	defer testutil.TeardownDB(t, db)
//
// Every call returns a private in-memory SQLite database with the embedded
// migrations applied, so tests can run in parallel without a database server.
package testutil

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/allisson/toyrsa/internal/database"
)

// SQLiteMemoryDSN returns a DSN for a fresh named in-memory SQLite database. The name
// keeps databases from separate tests apart while shared cache lets every connection
// of one pool see the same data.
func SQLiteMemoryDSN() string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
}

// SetupSQLiteDB creates a new in-memory SQLite database and runs migrations.
func SetupSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver:             database.DriverSQLite,
		ConnectionString:   SQLiteMemoryDSN(),
		MaxOpenConnections: 1,
		MaxIdleConnections: 1,
		ConnMaxLifetime:    time.Hour,
	})
	require.NoError(t, err, "failed to connect to sqlite")

	err = database.Migrate(db, database.DriverSQLite)
	require.NoError(t, err, "failed to run sqlite migrations")

	return db
}

// TeardownDB closes the database connection and cleans up.
func TeardownDB(t *testing.T, db *sql.DB) {
	t.Helper()
	if db != nil {
		err := db.Close()
		require.NoError(t, err, "failed to close database connection")
	}
}

// CleanupDB deletes every row from the key_pairs table.
func CleanupDB(t *testing.T, db *sql.DB) {
	t.Helper()

	_, err := db.Exec(`DELETE FROM key_pairs`)
	require.NoError(t, err, "failed to clean up key_pairs")
}
