package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	rerrors "github.com/narayanastores/retail/internal/errors"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint violation.
const uniqueViolation = "23505"

const productColumns = "id, name, price_cents, quantity, created_at"

// withTransaction runs fn inside a database transaction, rolling back on error.
func withTransaction(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return rerrors.ErrTransactionBegin
	}

	err = fn(tx)
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return rerrors.ErrTransactionRollback
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return rerrors.ErrTransactionCommit
	}

	return nil
}

// scanProduct reads one product row from a pgx row scanner.
func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	if err := row.Scan(&p.ID, &p.Name, &p.PriceCents, &p.Quantity, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
