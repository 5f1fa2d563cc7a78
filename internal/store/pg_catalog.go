package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	rerrors "github.com/narayanastores/retail/internal/errors"
)

// PgCatalogStore implements CatalogStore using PostgreSQL as the data store.
type PgCatalogStore struct {
	db *pgxpool.Pool
}

// NewPgCatalogStore creates a new instance of CatalogStore using a PostgreSQL connection pool.
func NewPgCatalogStore(dbp *pgxpool.Pool) *PgCatalogStore {
	return &PgCatalogStore{
		db: dbp,
	}
}

// Create adds a new product to the catalog.
// Returns ErrDuplicateName if a product with the same name already exists.
func (p *PgCatalogStore) Create(ctx context.Context, name string, priceCents int64, quantity int64) (*Product, error) {
	row := p.db.QueryRow(ctx, `
		INSERT INTO products (name, price_cents, quantity)
		VALUES ($1, $2, $3)
		RETURNING `+productColumns,
		name, priceCents, quantity)

	product, err := scanProduct(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, rerrors.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// FindByID retrieves a product by its identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgCatalogStore) FindByID(ctx context.Context, id int64) (*Product, error) {
	row := p.db.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1`, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rerrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return product, nil
}

// FindAll retrieves every product in the catalog.
// It returns a slice of products, which may be empty if no products exist.
func (p *PgCatalogStore) FindAll(ctx context.Context) ([]Product, error) {
	rows, err := p.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product rows: %w", err)
	}
	return products, nil
}

// SetQuantity overwrites a product's on-hand quantity unconditionally.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgCatalogStore) SetQuantity(ctx context.Context, id int64, quantity int64) (*Product, error) {
	row := p.db.QueryRow(ctx, `
		UPDATE products
		SET quantity = $2
		WHERE id = $1
		RETURNING `+productColumns,
		id, quantity)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rerrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product quantity: %w", err)
	}
	return product, nil
}

// DeleteByID removes a product row. Deleting an absent ID succeeds as a no-op.
// Historical sales rows referencing the product stay in place.
func (p *PgCatalogStore) DeleteByID(ctx context.Context, id int64) error {
	if _, err := p.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete product by ID: %w", err)
	}
	return nil
}
