// Package store provides interfaces for catalog and sales ledger storage operations.
package store

import "context"

// CatalogStore is an interface for product catalog storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type CatalogStore interface {
	// Create adds a new product to the catalog.
	// Returns ErrDuplicateName if a product with the same name already exists.
	Create(ctx context.Context, name string, priceCents int64, quantity int64) (*Product, error)

	// FindByID retrieves a single product by its identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindAll returns every product in the catalog.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// SetQuantity overwrites a product's on-hand quantity unconditionally.
	// No bounds checking happens here; the sell operation is the only
	// guarded stock mutation. Returns ErrProductNotFound if the ID is absent.
	SetQuantity(ctx context.Context, id int64, quantity int64) (*Product, error)

	// DeleteByID removes a product row. Deleting an absent ID is a no-op,
	// not an error. Historical sales referencing the product are left in place.
	DeleteByID(ctx context.Context, id int64) error
}

// LedgerStore is an interface for sales ledger storage operations.
type LedgerStore interface {
	// RecordSale performs the compound sell operation: it reads the product,
	// verifies stock, decrements the on-hand quantity and appends the sale
	// row in a single transaction. The stored total is the unit price read
	// inside the transaction multiplied by quantitySold.
	// Returns ErrProductNotFound if the product is absent and
	// ErrInsufficientStock if quantitySold exceeds the on-hand quantity;
	// in both cases nothing is mutated.
	RecordSale(ctx context.Context, productID int64, quantitySold int64) (*Sale, error)

	// FindAll returns recorded sales joined with product names, newest first.
	// limit <= 0 returns the full ledger.
	FindAll(ctx context.Context, limit int64) ([]SaleWithProduct, error)
}
