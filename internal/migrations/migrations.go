// Package migrations carries the schema as embedded golang-migrate files.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

// Status reports the schema version before and after a run.
type Status struct {
	Before uint
	After  uint
}

func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	src, err := iofs.New(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("migration driver: %w", err)
	}
	return migrate.NewWithInstance("iofs", src, "postgres", driver)
}

// Up applies every pending migration. Running it on an up-to-date schema is
// a no-op.
func Up(db *sql.DB) (Status, error) {
	return run(db, func(m *migrate.Migrate) error { return m.Up() })
}

// Down rolls back the most recent migration.
func Down(db *sql.DB) (Status, error) {
	return run(db, func(m *migrate.Migrate) error { return m.Steps(-1) })
}

func run(db *sql.DB, step func(*migrate.Migrate) error) (Status, error) {
	var st Status
	m, err := newMigrate(db)
	if err != nil {
		return st, err
	}
	if st.Before, err = version(m); err != nil {
		return st, err
	}
	if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return st, err
	}
	st.After, err = version(m)
	return st, err
}

func version(m *migrate.Migrate) (uint, error) {
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if dirty {
		return v, fmt.Errorf("schema version %d is dirty", v)
	}
	return v, nil
}
