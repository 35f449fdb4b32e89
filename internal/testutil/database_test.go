package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteMemoryDSN(t *testing.T) {
	first := SQLiteMemoryDSN()
	second := SQLiteMemoryDSN()

	assert.NotEqual(t, first, second)
	assert.Contains(t, first, "mode=memory")
	assert.Contains(t, first, "cache=shared")
}

func TestSetupSQLiteDB(t *testing.T) {
	db := SetupSQLiteDB(t)
	defer TeardownDB(t, db)

	_, err := db.Exec(
		`INSERT INTO key_pairs (id, public_exponent, private_exponent, modulus, created_at)
		 VALUES ('a', '17', '2753', '3233', CURRENT_TIMESTAMP)`,
	)
	require.NoError(t, err)

	CleanupDB(t, db)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM key_pairs`).Scan(&count))
	assert.Zero(t, count)
}

func TestSetupSQLiteDB_Isolated(t *testing.T) {
	first := SetupSQLiteDB(t)
	defer TeardownDB(t, first)
	second := SetupSQLiteDB(t)
	defer TeardownDB(t, second)

	_, err := first.Exec(
		`INSERT INTO key_pairs (id, public_exponent, private_exponent, modulus, created_at)
		 VALUES ('a', '17', '2753', '3233', CURRENT_TIMESTAMP)`,
	)
	require.NoError(t, err)

	var count int
	require.NoError(t, second.QueryRow(`SELECT COUNT(*) FROM key_pairs`).Scan(&count))
	assert.Zero(t, count)
}

func TestTeardownDB_Nil(t *testing.T) {
	assert.NotPanics(t, func() {
		TeardownDB(t, nil)
	})
}
