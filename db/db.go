package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/project/bookshelf/pkg/logger"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SetupPostgres runs the embedded goose migrations and returns a ready
// connection pool.
func SetupPostgres(ctx context.Context, log *zap.Logger, pgURL string) (*pgxpool.Pool, error) {
	if err := runMigrations(ctx, pgURL); err != nil {
		return nil, fmt.Errorf("can not run migrations: %w", err)
	}

	pool, err := pgxpool.New(ctx, pgURL)

	if err != nil {
		return nil, fmt.Errorf("can not create pgxpool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("can not ping postgres: %w", err)
	}

	logger.MakeInfo(log, "postgres ready")
	return pool, nil
}

func runMigrations(ctx context.Context, pgURL string) error {
	sqlDB, err := sql.Open("pgx", stripPoolParams(pgURL))

	if err != nil {
		return err
	}

	defer sqlDB.Close()

	goose.SetBaseFS(migrations)

	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, sqlDB, "migrations")
}

// stripPoolParams drops pgxpool-only settings from the URL, the stdlib
// driver used by goose rejects them.
func stripPoolParams(pgURL string) string {
	parsed, err := url.Parse(pgURL)

	if err != nil {
		return pgURL
	}

	query := parsed.Query()
	query.Del("pool_max_conns")
	parsed.RawQuery = query.Encode()

	return parsed.String()
}
