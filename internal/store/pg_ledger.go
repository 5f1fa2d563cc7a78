package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	rerrors "github.com/narayanastores/retail/internal/errors"
)

// PgLedgerStore implements LedgerStore using PostgreSQL as the data store.
type PgLedgerStore struct {
	db *pgxpool.Pool
}

// NewPgLedgerStore creates a new instance of LedgerStore using a PostgreSQL connection pool.
func NewPgLedgerStore(dbp *pgxpool.Pool) *PgLedgerStore {
	return &PgLedgerStore{
		db: dbp,
	}
}

// RecordSale performs the compound sell operation inside one transaction:
// a guarded read of the product row, the stock decrement, and the ledger
// append. A failure at any step leaves both tables untouched.
func (p *PgLedgerStore) RecordSale(ctx context.Context, productID int64, quantitySold int64) (*Sale, error) {
	var sale *Sale

	txErr := withTransaction(ctx, p.db, func(tx pgx.Tx) error {
		var priceCents, onHand int64
		err := tx.QueryRow(ctx, `
			SELECT price_cents, quantity
			FROM products
			WHERE id = $1
			FOR UPDATE`, productID).Scan(&priceCents, &onHand)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return rerrors.ErrProductNotFound
			}
			return fmt.Errorf("failed to read product for sale: %w", err)
		}

		if quantitySold > onHand {
			return rerrors.ErrInsufficientStock
		}

		// The total is computed from the price read above and stored once;
		// later price changes must not alter recorded sales.
		totalCents := priceCents * quantitySold

		if _, err := tx.Exec(ctx, `
			UPDATE products
			SET quantity = quantity - $2
			WHERE id = $1`, productID, quantitySold); err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}

		var s Sale
		err = tx.QueryRow(ctx, `
			INSERT INTO sales (product_id, quantity_sold, total_cents)
			VALUES ($1, $2, $3)
			RETURNING id, product_id, quantity_sold, total_cents, recorded_at`,
			productID, quantitySold, totalCents).
			Scan(&s.ID, &s.ProductID, &s.QuantitySold, &s.TotalCents, &s.RecordedAt)
		if err != nil {
			return fmt.Errorf("failed to append sale row: %w", err)
		}
		sale = &s
		return nil
	})

	if txErr != nil {
		return nil, txErr
	}

	return sale, nil
}

// FindAll retrieves recorded sales joined with product names, newest first.
// limit <= 0 returns the full ledger.
func (p *PgLedgerStore) FindAll(ctx context.Context, limit int64) ([]SaleWithProduct, error) {
	query := `
		SELECT s.id, s.product_id, s.quantity_sold, s.total_cents, s.recorded_at, p.name
		FROM sales s
		JOIN products p ON p.id = s.product_id
		ORDER BY s.recorded_at DESC, s.id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find sales: %w", err)
	}
	defer rows.Close()

	sales := make([]SaleWithProduct, 0)
	for rows.Next() {
		var s SaleWithProduct
		if err := rows.Scan(&s.ID, &s.ProductID, &s.QuantitySold, &s.TotalCents, &s.RecordedAt, &s.ProductName); err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sale rows: %w", err)
	}
	return sales, nil
}
