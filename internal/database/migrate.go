package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var fs embed.FS

// Migrate applies the embedded postgres migrations in the given
// direction ("up" or "down").
func Migrate(direction string, dbConnStr string) error {
	d, err := iofs.New(fs, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migration files: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, dbConnStr)
	if err != nil {
		return fmt.Errorf("failed create new source instance: %w", err)
	}

	migrateMethod := m.Up

	if direction == "down" {
		migrateMethod = m.Down
	}
	if err := migrateMethod(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate %v: %w", direction, err)
	}
	return nil
}
