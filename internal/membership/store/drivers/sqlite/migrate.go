package sqlite

import (
	"database/sql"
	"errors"

	"github.com/aussiebroadwan/circle/internal/membership/store/drivers/sqlite/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// migrateUp applies the embedded schema. It runs on the store's own handle so
// that ":memory:" databases migrate the connection the store will use.
func migrateUp(db *sql.DB) error {
	// 1. Wrap the handle in the migrate sqlite driver
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return err
	}

	// 2. Embedded migration files
	src, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return err
	}

	// 3. Apply everything pending
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
