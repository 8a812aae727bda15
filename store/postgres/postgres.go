/*
Package postgres implements the persistence port against a remote
PostgreSQL store.

RESPONSIBILITIES BEYOND PLAIN SQL:
  - Field-name translation: the store speaks snake_case, the domain speaks
    camelCase. The bidirectional mapping lives in one place per entity
    (colmap.go) and partial updates are built from it.
  - Numeric coercion: decimal columns are selected as text and coerced to
    decimal.Decimal; the wire may hand them back as strings.
  - Not-found mapping: a zero-row single fetch is a distinguished
    non-error outcome (nil), never confused with a query failure.
  - Row-count signaling: deletes ask for the affected row count and treat
    count > 0 as success.

IDS AND TIMESTAMPS:
  The store assigns both (gen_random_uuid(), now()); the adapter never
  generates them, unlike the flat-record adapter.

MIGRATIONS:
  Schema is applied on New() from the embedded goose migrations under
  migrations/.
*/
package postgres

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store implements vacation.Store over a pgx connection pool.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// New connects to the remote store, applies pending migrations and
// returns the adapter.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := runMigrations(ctx, dsn); err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	logger.Info("connected to postgres store")
	return &Store{pool: pool, logger: logger}, nil
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// TruncateAll wipes every table. Test support only; nothing in the
// serving path calls it.
func (s *Store) TruncateAll(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "TRUNCATE vacation_periods, professionals, users CASCADE")
	if err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	return nil
}

func runMigrations(ctx context.Context, dsn string) error {
	goose.SetBaseFS(migrations)

	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
