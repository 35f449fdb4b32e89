package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/allisson/toyrsa/migrations"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite3"
)

// ErrUnsupportedDriver is returned for a driver name outside the supported set.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Migrate applies every pending embedded migration for the given driver.
//
// The migrate instance is left open since closing it closes db.
func Migrate(db *sql.DB, driver string) error {
	dir, instance, err := migrationTarget(db, driver)
	if err != nil {
		return err
	}

	source, err := iofs.New(migrations.FS, dir)
	if err != nil {
		return fmt.Errorf("failed to open %s migrations: %w", dir, err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, instance)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run %s migrations: %w", driver, err)
	}
	return nil
}

// migrationTarget maps a driver name to its migrations directory and migrate driver.
func migrationTarget(db *sql.DB, driver string) (string, migratedb.Driver, error) {
	var (
		dir      string
		instance migratedb.Driver
		err      error
	)

	switch driver {
	case DriverPostgres:
		dir = "postgresql"
		instance, err = postgres.WithInstance(db, &postgres.Config{})
	case DriverMySQL:
		dir = "mysql"
		instance, err = mysql.WithInstance(db, &mysql.Config{})
	case DriverSQLite:
		dir = "sqlite3"
		instance, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to create %s migrate driver: %w", driver, err)
	}
	return dir, instance, nil
}
