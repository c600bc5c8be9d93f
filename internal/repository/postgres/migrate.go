package postgres

import (
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrMigration marks failures of the migrations themselves, as opposed to
// the database being unreachable.
var ErrMigration = errors.New("migration failed")

// Migrate applies all pending schema migrations. databaseURL must be a
// postgres:// or postgresql:// URL; connectTimeout is added to it as for Open.
func Migrate(databaseURL string, connectTimeout time.Duration) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("%w: load: %w", ErrMigration, err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, withConnectTimeout(databaseURL, connectTimeout))
	if err != nil {
		return migrationErr("init", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return migrationErr("apply", err)
	}
	return nil
}

func migrationErr(step string, err error) error {
	if isConnectionError(err) {
		return storeErr(fmt.Errorf("%s migrations: %w", step, err))
	}
	return fmt.Errorf("%w: %s: %w", ErrMigration, step, err)
}
