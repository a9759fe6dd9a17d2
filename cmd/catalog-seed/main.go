// Command catalog-seed writes the built-in gadget catalog into postgres.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/nikolayk812/storefront-demo/internal/catalog"
	"github.com/nikolayk812/storefront-demo/internal/config"
	"github.com/nikolayk812/storefront-demo/internal/logger"
	"github.com/nikolayk812/storefront-demo/internal/repository"
	"github.com/rs/zerolog"
)

const serviceName = "catalog-seed"

func main() {
	log := logger.New(logger.Options{ServiceName: serviceName, Format: logger.FormatConsole})

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	log = logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})

	if err := seed(context.Background(), cfg, log); err != nil {
		log.Error().Err(err).Msg("seeding failed")
		os.Exit(1)
	}
}

func seed(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	if cfg.Catalog.DSN == "" {
		return fmt.Errorf("STOREFRONT_DB_DSN is empty")
	}

	unit, err := cfg.Catalog.Unit()
	if err != nil {
		return err
	}

	products, err := catalog.Static(unit).ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("ListProducts: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.Catalog.DSN)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	if err := repository.NewProductCatalog(pool).SaveProducts(ctx, products); err != nil {
		return fmt.Errorf("SaveProducts: %w", err)
	}

	log.Info().Int("products", len(products)).Str("currency", unit.String()).Msg("catalog seeded")

	return nil
}
