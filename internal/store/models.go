package store

import "time"

// Product is a catalog row. PriceCents holds the unit price in minor
// currency units.
type Product struct {
	ID         int64
	Name       string
	PriceCents int64
	Quantity   int64
	CreatedAt  time.Time
}

// Sale is a ledger row. Rows are append-only: once recorded they are
// never updated or deleted, and TotalCents keeps the unit price that was
// current when the sale happened.
type Sale struct {
	ID           int64
	ProductID    int64
	QuantitySold int64
	TotalCents   int64
	RecordedAt   time.Time
}

// SaleWithProduct is a ledger row joined with the product name for display.
// Sales whose product has since been deleted do not appear in joined
// listings.
type SaleWithProduct struct {
	Sale
	ProductName string
}
