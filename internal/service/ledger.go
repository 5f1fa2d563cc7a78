package service

import (
	"context"
	"fmt"
	"time"

	"github.com/narayanastores/retail/internal/store"
)

// timeFormat is the wire format for timestamps in DTOs.
const timeFormat = time.RFC3339

// LedgerService defines the methods for the sales ledger.
// It abstracts the underlying business logic and data access.
type LedgerService interface {
	// Sell records a sale: it checks stock, decrements the product's
	// on-hand quantity and appends a ledger row in a single transaction.
	// Returns ErrProductNotFound if the product is absent and
	// ErrInsufficientStock if the requested quantity exceeds stock;
	// neither failure mutates anything.
	Sell(ctx context.Context, sale SaleCreateDto) (*SaleDto, error)

	// FindAll returns recorded sales joined with product names, newest
	// first. limit <= 0 returns the full ledger.
	FindAll(ctx context.Context, limit int64) ([]SaleRowDto, error)
}

// Ledger implements LedgerService and provides methods to record and list sales.
type Ledger struct {
	repository store.LedgerStore
}

// NewLedger creates a new instance of LedgerService with the provided repository.
func NewLedger(repo store.LedgerStore) *Ledger {
	return &Ledger{
		repository: repo,
	}
}

// SaleCreateDto represents the data transfer object for recording a sale.
type SaleCreateDto struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity"   validate:"required,gt=0"`
}

// SaleDto represents the data transfer object for a recorded sale.
// TotalCents is the unit price at the moment of sale multiplied by the
// quantity sold; it is stored once and never recomputed.
type SaleDto struct {
	ID           int64  `json:"id"`
	ProductID    int64  `json:"product_id"`
	QuantitySold int64  `json:"quantity_sold"`
	TotalCents   int64  `json:"total_cents"`
	RecordedAt   string `json:"recorded_at"`
}

// SaleRowDto is a ledger row joined with the product name for display.
type SaleRowDto struct {
	SaleDto
	ProductName string `json:"product_name"`
}

// Sell records a sale and returns it as a SaleDto.
// Returns ErrProductNotFound or ErrInsufficientStock on the two guarded
// failure paths; in both cases no row is written.
func (s *Ledger) Sell(ctx context.Context, sale SaleCreateDto) (*SaleDto, error) {
	recorded, err := s.repository.RecordSale(ctx, sale.ProductID, sale.Quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to record sale for product %d: %w", sale.ProductID, err)
	}

	salesRecorded.Inc()
	salesRevenueCents.Add(float64(recorded.TotalCents))

	return toSaleDto(recorded), nil
}

// FindAll retrieves the sales ledger and returns it as SaleRowDTOs.
// Returns an empty slice if no sales are recorded.
func (s *Ledger) FindAll(ctx context.Context, limit int64) ([]SaleRowDto, error) {
	sales, err := s.repository.FindAll(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sales: %w", err)
	}
	saleDTOs := make([]SaleRowDto, len(sales))

	for i, item := range sales {
		saleDTOs[i] = SaleRowDto{
			SaleDto:     *toSaleDto(&item.Sale),
			ProductName: item.ProductName,
		}
	}

	return saleDTOs, nil
}

// toSaleDto converts a store.Sale to a SaleDto.
func toSaleDto(sale *store.Sale) *SaleDto {
	return &SaleDto{
		ID:           sale.ID,
		ProductID:    sale.ProductID,
		QuantitySold: sale.QuantitySold,
		TotalCents:   sale.TotalCents,
		RecordedAt:   sale.RecordedAt.Format(timeFormat),
	}
}
