package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nikolayk812/storefront-demo/internal/catalog"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestStatic(t *testing.T) {
	products, err := catalog.Static(currency.USD).ListProducts(t.Context())
	require.NoError(t, err)

	want := []struct {
		id    int
		name  string
		price string
	}{
		{1, "Camera", "499.99"},
		{2, "PlayStation", "399.99"},
		{3, "Bluetooth Speaker", "99.99"},
		{4, "Smart Watch", "199.99"},
		{5, "Laptop", "899.99"},
		{6, "Headphones", "149.99"},
	}

	require.Len(t, products, len(want))
	for i, w := range want {
		assert.Equal(t, w.id, products[i].ID)
		assert.Equal(t, w.name, products[i].Name)
		assert.Equal(t, w.price, products[i].Price.Fixed())
		assert.Equal(t, currency.USD, products[i].Price.Currency)
		assert.NotEmpty(t, products[i].ImageRef)
		assert.NotEmpty(t, products[i].Description)
	}
}

func TestStatic_returnsCopy(t *testing.T) {
	src := catalog.Static(currency.EUR)

	first, err := src.ListProducts(t.Context())
	require.NoError(t, err)
	first[0].Name = "changed"

	second, err := src.ListProducts(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "Camera", second[0].Name)
}

func TestStatic_cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := catalog.Static(currency.USD).ListProducts(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

type failingSource struct {
	products []domain.Product
	err      error
}

func (s failingSource) ListProducts(context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func TestLoad(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name      string
		src       failingSource
		wantError string
	}{
		{
			name:      "source fails: error",
			src:       failingSource{err: boom},
			wantError: "src.ListProducts: boom",
		},
		{
			name:      "source is empty: error",
			src:       failingSource{},
			wantError: "domain.NewCatalog: products are empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Load(t.Context(), tt.src)
			require.EqualError(t, err, tt.wantError)
		})
	}

	c, err := catalog.Load(t.Context(), catalog.Static(currency.USD))
	require.NoError(t, err)
	assert.Equal(t, 6, c.Len())
}
