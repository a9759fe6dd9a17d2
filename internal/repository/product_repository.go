package repository

import (
	"context"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront-demo/internal/db"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/port"
	"golang.org/x/text/currency"
	"math"
)

type productRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewProductCatalog(pool *pgxpool.Pool) port.CatalogStore {
	return &productRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewProductCatalogWithTx(tx pgx.Tx) port.CatalogStore {
	return &productRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products, err := mapListProductsRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapListProductsRowsToDomain: %w", err)
	}

	return products, nil
}

// SaveProducts replaces the stored catalog, keeping the given order.
func (r *productRepository) SaveProducts(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return fmt.Errorf("products are empty")
	}

	params := make([]db.UpsertProductParams, 0, len(products))
	for i, p := range products {
		param, err := mapProductToUpsertParams(i, p)
		if err != nil {
			return fmt.Errorf("mapProductToUpsertParams: %w", err)
		}
		params = append(params, param)
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (int, error) {
		if _, err := q.DeleteProducts(ctx); err != nil {
			return 0, fmt.Errorf("q.DeleteProducts: %w", err)
		}

		for _, param := range params {
			if err := q.UpsertProduct(ctx, param); err != nil {
				return 0, fmt.Errorf("q.UpsertProduct[%d]: %w", param.ID, err)
			}
		}

		return len(params), nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func mapProductToUpsertParams(position int, p domain.Product) (db.UpsertProductParams, error) {
	if p.ID <= 0 || p.ID > math.MaxInt32 {
		return db.UpsertProductParams{}, fmt.Errorf("product[%d] id is out of range", p.ID)
	}
	if p.Price.Currency == (currency.Unit{}) {
		return db.UpsertProductParams{}, fmt.Errorf("product[%d] currency is empty", p.ID)
	}

	return db.UpsertProductParams{
		ID:            int32(p.ID),
		Position:      int32(position),
		Name:          p.Name,
		PriceAmount:   p.Price.Amount,
		PriceCurrency: p.Price.Currency.String(),
		ImageRef:      p.ImageRef,
		Description:   p.Description,
	}, nil
}

func mapListProductsRowToDomain(row db.ListProductsRow) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.Product{
		ID:          int(row.ID),
		Name:        row.Name,
		Price:       domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		ImageRef:    row.ImageRef,
		Description: row.Description,
	}, nil
}

func mapListProductsRowsToDomain(rows []db.ListProductsRow) ([]domain.Product, error) {
	var products []domain.Product

	for _, row := range rows {
		product, err := mapListProductsRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapListProductsRowToDomain: %w", err)
		}

		products = append(products, product)
	}

	return products, nil
}
