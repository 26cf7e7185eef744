package pg

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"github.com/golang-migrate/migrate/v4"
	pgdriver "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"

	infraconfig "hargakripto/internal/infrastructure/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

// RunMigrations brings the blobs schema up to date. The database may still be
// starting, so the first ping is retried for a bounded time.
func RunMigrations(ctx context.Context, db *DB) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("migrate src: %w", err)
	}
	sqldb, err := sql.Open("pgx", db.Pool.Config().ConnString())
	if err != nil {
		return fmt.Errorf("open sql db: %w", err)
	}
	defer sqldb.Close()

	wait := backoff.NewExponentialBackOff()
	wait.InitialInterval = infraconfig.DefaultPGPingInterval
	wait.MaxElapsedTime = infraconfig.DefaultPGPingWait
	if err := backoff.Retry(func() error { return sqldb.PingContext(ctx) }, backoff.WithContext(wait, ctx)); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	driver, err := pgdriver.WithInstance(sqldb, &pgdriver.Config{})
	if err != nil {
		return fmt.Errorf("migrate driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate init: %w", err)
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
