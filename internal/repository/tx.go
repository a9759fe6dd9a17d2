package repository

import (
	"context"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront-demo/internal/db"
)

// catalogTxOptions: readers never see a half-replaced catalog.
var catalogTxOptions = pgx.TxOptions{
	IsoLevel:   pgx.ReadCommitted,
	AccessMode: pgx.ReadWrite,
}

// withTx runs fn in a new transaction, or directly on q when the repository
// was built on an outer transaction (pool is nil).
func withTx[T any](ctx context.Context, pool *pgxpool.Pool, q *db.Queries, fn func(q *db.Queries) (T, error)) (T, error) {
	if pool == nil {
		return fn(q)
	}

	var result T

	// BeginTxFunc rolls back when fn fails and commits otherwise
	err := pgx.BeginTxFunc(ctx, pool, catalogTxOptions, func(tx pgx.Tx) error {
		var err error
		result, err = fn(q.WithTx(tx))
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}
