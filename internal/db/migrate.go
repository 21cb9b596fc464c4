package db

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
)

// Migrator applies the embedded migrations to one database.
type Migrator struct {
	m *migrate.Migrate
}

func NewMigrator(databaseURL string) (*Migrator, error) {
	migrationsFS, err := fs.Sub(Migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to get embedded migrations: %w", err)
	}

	d, err := iofs.New(migrationsFS, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to create iofs driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return &Migrator{m: m}, nil
}

// Up applies every pending migration. It returns the resulting version and
// whether anything changed.
func (mg *Migrator) Up() (uint, bool, error) {
	if err := mg.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			version, _, _ := mg.Version()
			return version, false, nil
		}
		return 0, false, fmt.Errorf("migration failed: %w", err)
	}
	version, _, err := mg.Version()
	return version, true, err
}

// Down rolls back the given number of migrations.
func (mg *Migrator) Down(steps int) (uint, error) {
	if steps < 1 {
		steps = 1
	}
	if err := mg.m.Steps(-steps); err != nil {
		return 0, fmt.Errorf("rollback failed: %w", err)
	}
	version, _, err := mg.Version()
	return version, err
}

// Version returns the applied version. A database with no migrations reports 0.
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

// MigrationFiles lists the embedded up migrations in order.
func MigrationFiles() ([]string, error) {
	migrationsFS, err := fs.Sub(Migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to get embedded migrations: %w", err)
	}

	matches, err := fs.Glob(migrationsFS, "*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}
	return matches, nil
}
