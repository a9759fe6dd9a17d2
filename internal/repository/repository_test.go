package repository_test

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	postgresImage = "postgres:17.6-alpine3.22"
	catalogDB     = "storefront"
	catalogUser   = "storefront"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase(catalogDB),
		postgres.WithUsername(catalogUser),
		postgres.WithPassword(catalogUser),
		postgres.WithInitScripts(filepath.Join("..", "migrations", "01_products.up.sql")),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

// newPool connects to the catalog database and checks the products table exists.
func newPool(ctx context.Context, connStr string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}
	cfg.MaxConns = 4

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}

	var table *string
	if err := pool.QueryRow(ctx, "SELECT to_regclass('public.products')::text").Scan(&table); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pool.QueryRow: %w", err)
	}
	if table == nil {
		pool.Close()
		return nil, fmt.Errorf("products table is missing")
	}

	return pool, nil
}
