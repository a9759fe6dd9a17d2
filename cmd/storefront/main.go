package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/nikolayk812/storefront-demo/internal/catalog"
	"github.com/nikolayk812/storefront-demo/internal/config"
	"github.com/nikolayk812/storefront-demo/internal/logger"
	"github.com/nikolayk812/storefront-demo/internal/port"
	"github.com/nikolayk812/storefront-demo/internal/repository"
	"github.com/nikolayk812/storefront-demo/internal/session"
	"github.com/nikolayk812/storefront-demo/internal/storefront"
	"github.com/rs/zerolog"
)

const serviceName = "storefront"

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("storefront stopped")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	src, closeSrc, err := openCatalog(ctx, cfg)
	if err != nil {
		return fmt.Errorf("openCatalog: %w", err)
	}
	defer closeSrc()

	gadgets, err := catalog.Load(ctx, src)
	if err != nil {
		return fmt.Errorf("catalog.Load: %w", err)
	}

	log.Info().
		Str("source", cfg.Catalog.Source).
		Int("products", gadgets.Len()).
		Msg("catalog loaded")

	ctrl := session.New(gadgets, session.WithLogger(log))

	term := storefront.New(ctrl, os.Stdout,
		storefront.WithLogger(log),
		storefront.WithPayment(storefront.Payment{
			QRImage: cfg.Payment.QRImage,
			UPIID:   cfg.Payment.UPIID,
		}),
	)

	if err := term.Run(ctx, os.Stdin); err != nil {
		return fmt.Errorf("term.Run: %w", err)
	}

	return nil
}

func openCatalog(ctx context.Context, cfg *config.Config) (port.CatalogSource, func(), error) {
	if cfg.Catalog.Source == config.CatalogSourcePostgres {
		pool, err := pgxpool.New(ctx, cfg.Catalog.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		return repository.NewProductCatalog(pool), pool.Close, nil
	}

	unit, err := cfg.Catalog.Unit()
	if err != nil {
		return nil, nil, err
	}

	return catalog.Static(unit), func() {}, nil
}
