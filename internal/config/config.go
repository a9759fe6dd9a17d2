// Package config loads storefront settings from the environment.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/currency"
)

const EnvPrefix = "STOREFRONT"

const (
	CatalogSourceStatic   = "static"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Payment PaymentConfig
}

type AppConfig struct {
	Env       string `envconfig:"STOREFRONT_APP_ENV" default:"dev" validate:"required"`
	LogLevel  string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"STOREFRONT_LOG_FORMAT" default:"console" validate:"oneof=json console"`
}

type CatalogConfig struct {
	Source   string `envconfig:"STOREFRONT_CATALOG_SOURCE" default:"static" validate:"oneof=static postgres"`
	Currency string `envconfig:"STOREFRONT_CURRENCY" default:"USD" validate:"iso4217"`
	DSN      string `envconfig:"STOREFRONT_DB_DSN" validate:"required_if=Source postgres"`
}

// PaymentConfig holds the opaque values shown on the payment screen.
type PaymentConfig struct {
	QRImage string `envconfig:"STOREFRONT_PAYMENT_QR_IMAGE" default:"assets/qr.jpeg"`
	UPIID   string `envconfig:"STOREFRONT_PAYMENT_UPI_ID" default:"sjega82@oksbi" validate:"required"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("envconfig.Process: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	return &cfg, nil
}

func (c CatalogConfig) Unit() (currency.Unit, error) {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("currency[%s] is not valid: %w", c.Currency, err)
	}
	return unit, nil
}
