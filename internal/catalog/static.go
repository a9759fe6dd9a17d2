// Package catalog supplies the products a session is seeded with.
package catalog

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type staticSource struct {
	products []domain.Product
}

// Static returns the built-in gadget catalog priced in unit.
func Static(unit currency.Unit) port.CatalogSource {
	return &staticSource{products: seed(unit)}
}

func (s *staticSource) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)

	return out, nil
}

func seed(unit currency.Unit) []domain.Product {
	price := func(s string) domain.Money {
		return domain.Money{Amount: decimal.RequireFromString(s), Currency: unit}
	}

	return []domain.Product{
		{
			ID:          1,
			Name:        "Camera",
			Price:       price("499.99"),
			ImageRef:    "assets/cam.jpg",
			Description: "Professional DSLR camera with extra lenses.",
		},
		{
			ID:          2,
			Name:        "PlayStation",
			Price:       price("399.99"),
			ImageRef:    "assets/ps.jpg",
			Description: "Sony PlayStation gaming console.",
		},
		{
			ID:          3,
			Name:        "Bluetooth Speaker",
			Price:       price("99.99"),
			ImageRef:    "assets/speaker.jpg",
			Description: "JBL wireless speaker with deep bass.",
		},
		{
			ID:          4,
			Name:        "Smart Watch",
			Price:       price("199.99"),
			ImageRef:    "assets/watc.jpg",
			Description: "Stylish smartwatch with health tracking.",
		},
		{
			ID:          5,
			Name:        "Laptop",
			Price:       price("899.99"),
			ImageRef:    "assets/comp.jpg",
			Description: "High-performance laptop for professionals.",
		},
		{
			ID:          6,
			Name:        "Headphones",
			Price:       price("149.99"),
			ImageRef:    "assets/headset.jpg",
			Description: "Wireless noise-canceling headphones.",
		},
	}
}

// Load reads the products from src and builds the session catalog.
func Load(ctx context.Context, src port.CatalogSource) (domain.Catalog, error) {
	products, err := src.ListProducts(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("src.ListProducts: %w", err)
	}

	c, err := domain.NewCatalog(products)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("domain.NewCatalog: %w", err)
	}

	return c, nil
}
