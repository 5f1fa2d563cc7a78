package service

import (
	"context"
	"errors"
	"testing"
	"time"

	rerrors "github.com/narayanastores/retail/internal/errors"
	"github.com/narayanastores/retail/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatalogStore is a mock implementation of the CatalogStore interface
type mockCatalogStore struct {
	products []store.Product
	product  store.Product
	error    error
	deleted  []int64
}

// Simulate creating a product
func (m *mockCatalogStore) Create(_ context.Context, _ string, _ int64, _ int64) (*store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

// Simulate finding a product by ID
func (m *mockCatalogStore) FindByID(_ context.Context, _ int64) (*store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

// Simulate finding all products
func (m *mockCatalogStore) FindAll(_ context.Context) ([]store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.products, nil
}

// Simulate overwriting a product's quantity
func (m *mockCatalogStore) SetQuantity(_ context.Context, _ int64, quantity int64) (*store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	p := m.product
	p.Quantity = quantity
	return &p, nil
}

// Simulate deleting a product by ID
func (m *mockCatalogStore) DeleteByID(_ context.Context, id int64) error {
	if m.error != nil {
		return m.error
	}
	m.deleted = append(m.deleted, id)
	return nil
}

var testCreatedAt = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func Test_Catalog_Create(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name        string
		mockStore   *mockCatalogStore
		product     ProductCreateDto
		expected    *ProductDto
		expectError error
	}{
		{
			name: "Success - product created",
			mockStore: &mockCatalogStore{
				product: store.Product{ID: 1, Name: "Pen", PriceCents: 150, Quantity: 100, CreatedAt: testCreatedAt},
			},
			product:     ProductCreateDto{Name: "Pen", PriceCents: 150, Quantity: 100},
			expected:    &ProductDto{ID: 1, Name: "Pen", PriceCents: 150, Quantity: 100, CreatedAt: "2025-03-14T09:30:00Z"},
			expectError: nil,
		},
		{
			name: "Error - duplicate name",
			mockStore: &mockCatalogStore{
				error: rerrors.ErrDuplicateName,
			},
			product:     ProductCreateDto{Name: "Pen", PriceCents: 150, Quantity: 100},
			expected:    nil,
			expectError: rerrors.ErrDuplicateName,
		},
		{
			name: "Error - store error",
			mockStore: &mockCatalogStore{
				error: ErrStoreError,
			},
			product:     ProductCreateDto{Name: "Pen", PriceCents: 150, Quantity: 100},
			expected:    nil,
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewCatalog(tc.mockStore)
			// when
			created, err := service.Create(context.Background(), tc.product)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, created)
		})
	}
}

func Test_Catalog_FindByID(t *testing.T) {
	testCases := []struct {
		name        string
		mockStore   *mockCatalogStore
		productID   int64
		expected    *ProductDto
		expectError error
	}{
		{
			name: "Success - product found",
			mockStore: &mockCatalogStore{
				product: store.Product{ID: 7, Name: "Notebook", PriceCents: 500, Quantity: 25, CreatedAt: testCreatedAt},
			},
			productID:   7,
			expected:    &ProductDto{ID: 7, Name: "Notebook", PriceCents: 500, Quantity: 25, CreatedAt: "2025-03-14T09:30:00Z"},
			expectError: nil,
		},
		{
			name: "Error - product not found",
			mockStore: &mockCatalogStore{
				error: rerrors.ErrProductNotFound,
			},
			productID:   404,
			expected:    nil,
			expectError: rerrors.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewCatalog(tc.mockStore)
			// when
			found, err := service.FindByID(context.Background(), tc.productID)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_Catalog_FindAll(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name        string
		mockStore   *mockCatalogStore
		expected    []ProductDto
		expectError error
	}{
		{
			name: "Success - products found",
			mockStore: &mockCatalogStore{
				products: []store.Product{{ID: 1, Name: "Pen", PriceCents: 150, Quantity: 100, CreatedAt: testCreatedAt}},
			},
			expected:    []ProductDto{{ID: 1, Name: "Pen", PriceCents: 150, Quantity: 100, CreatedAt: "2025-03-14T09:30:00Z"}},
			expectError: nil,
		},
		{
			name: "Success - no products",
			mockStore: &mockCatalogStore{
				products: []store.Product{},
			},
			expected:    []ProductDto{},
			expectError: nil,
		},
		{
			name: "Error - store error",
			mockStore: &mockCatalogStore{
				error: ErrStoreError,
			},
			expected:    nil,
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewCatalog(tc.mockStore)
			// when
			found, err := service.FindAll(context.Background())
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_Catalog_SetQuantity(t *testing.T) {
	testCases := []struct {
		name        string
		mockStore   *mockCatalogStore
		productID   int64
		quantity    int64
		expected    *ProductDto
		expectError error
	}{
		{
			name: "Success - quantity overwritten",
			mockStore: &mockCatalogStore{
				product: store.Product{ID: 1, Name: "Pen", PriceCents: 150, Quantity: 100, CreatedAt: testCreatedAt},
			},
			productID:   1,
			quantity:    42,
			expected:    &ProductDto{ID: 1, Name: "Pen", PriceCents: 150, Quantity: 42, CreatedAt: "2025-03-14T09:30:00Z"},
			expectError: nil,
		},
		{
			name: "Error - product not found",
			mockStore: &mockCatalogStore{
				error: rerrors.ErrProductNotFound,
			},
			productID:   404,
			quantity:    42,
			expected:    nil,
			expectError: rerrors.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewCatalog(tc.mockStore)
			// when
			updated, err := service.SetQuantity(context.Background(), tc.productID, tc.quantity)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, updated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, updated)
		})
	}
}

func Test_Catalog_DeleteByID(t *testing.T) {
	t.Run("Success - delete is passed through", func(t *testing.T) {
		// given
		mockStore := &mockCatalogStore{}
		service := NewCatalog(mockStore)
		// when
		err := service.DeleteByID(context.Background(), 5)
		// then
		require.NoError(t, err)
		assert.Equal(t, []int64{5}, mockStore.deleted)
	})

	t.Run("Success - deleting an absent ID is not an error", func(t *testing.T) {
		// given
		service := NewCatalog(&mockCatalogStore{})
		// when
		err := service.DeleteByID(context.Background(), 999)
		// then
		require.NoError(t, err)
	})
}
