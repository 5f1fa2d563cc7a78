// Package service provides the implementation of catalog and ledger business logic.
package service

import (
	"context"
	"fmt"

	"github.com/narayanastores/retail/internal/store"
)

// CatalogService defines the methods for managing the product catalog.
// It abstracts the underlying business logic and data access.
type CatalogService interface {
	// Create adds a new product to the catalog.
	// Returns ErrDuplicateName if the product name is already taken.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// FindByID retrieves a single product by its identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*ProductDto, error)

	// FindAll returns every product in the catalog.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// SetQuantity overwrites a product's on-hand quantity (restock or
	// manual correction). Returns ErrProductNotFound if the ID is absent.
	SetQuantity(ctx context.Context, id int64, quantity int64) (*ProductDto, error)

	// DeleteByID removes a product. Deleting an absent ID is not an error.
	DeleteByID(ctx context.Context, id int64) error
}

// Catalog implements CatalogService and provides methods to manage products.
type Catalog struct {
	repository store.CatalogStore
}

// NewCatalog creates a new instance of CatalogService with the provided repository.
func NewCatalog(repo store.CatalogStore) *Catalog {
	return &Catalog{
		repository: repo,
	}
}

// ProductCreateDto represents the data transfer object for creating a new product.
// Positivity of price and quantity is the caller's contract, checked at the
// transport edge; the store only enforces name uniqueness.
type ProductCreateDto struct {
	Name       string `json:"name"        validate:"required,max=100"`
	PriceCents int64  `json:"price_cents" validate:"required,gt=0"`
	Quantity   int64  `json:"quantity"    validate:"required,gt=0"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int64  `json:"quantity"`
	CreatedAt  string `json:"created_at"`
}

// QuantityUpdateDto represents the data transfer object for overwriting
// a product's on-hand quantity.
type QuantityUpdateDto struct {
	Quantity int64 `json:"quantity" validate:"min=0"`
}

// Create adds a product to the catalog and returns it as a ProductDto.
// Returns ErrDuplicateName if the product name is already taken.
func (s *Catalog) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	p, err := s.repository.Create(ctx, product.Name, product.PriceCents, product.Quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return toProductDto(p), nil
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Catalog) FindByID(ctx context.Context, id int64) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}

	return toProductDto(product), nil
}

// FindAll retrieves the full catalog and returns it as ProductDTOs.
// Returns an empty slice if no products exist or error if the retrieval fails.
func (s *Catalog) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDTOs := make([]ProductDto, len(products))

	for i, item := range products {
		productDTOs[i] = *toProductDto(&item)
	}

	return productDTOs, nil
}

// SetQuantity overwrites a product's on-hand quantity and returns the updated
// product. Returns ErrProductNotFound if no product exists with the given ID.
func (s *Catalog) SetQuantity(ctx context.Context, id int64, quantity int64) (*ProductDto, error) {
	product, err := s.repository.SetQuantity(ctx, id, quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to update quantity for product with ID %d: %w", id, err)
	}

	return toProductDto(product), nil
}

// DeleteByID deletes a product by its ID. Absent IDs are a no-op.
func (s *Catalog) DeleteByID(ctx context.Context, id int64) error {
	return s.repository.DeleteByID(ctx, id)
}

// toProductDto converts a store.Product to a ProductDto.
func toProductDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:         product.ID,
		Name:       product.Name,
		PriceCents: product.PriceCents,
		Quantity:   product.Quantity,
		CreatedAt:  product.CreatedAt.Format(timeFormat),
	}
}
