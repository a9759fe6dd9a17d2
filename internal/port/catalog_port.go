package port

import (
	"context"
	"github.com/nikolayk812/storefront-demo/internal/domain"
)

type CatalogSource interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type CatalogWriter interface {
	SaveProducts(ctx context.Context, products []domain.Product) error
}

type CatalogStore interface {
	CatalogSource
	CatalogWriter
}
