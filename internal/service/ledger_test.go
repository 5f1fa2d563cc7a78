package service

import (
	"context"
	"errors"
	"testing"

	rerrors "github.com/narayanastores/retail/internal/errors"
	"github.com/narayanastores/retail/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLedgerStore is a mock implementation of the LedgerStore interface
type mockLedgerStore struct {
	sale  store.Sale
	sales []store.SaleWithProduct
	error error
}

// Simulate the compound sell operation
func (m *mockLedgerStore) RecordSale(_ context.Context, _ int64, _ int64) (*store.Sale, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.sale, nil
}

// Simulate listing the ledger
func (m *mockLedgerStore) FindAll(_ context.Context, _ int64) ([]store.SaleWithProduct, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.sales, nil
}

func Test_Ledger_Sell(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name        string
		mockStore   *mockLedgerStore
		sale        SaleCreateDto
		expected    *SaleDto
		expectError error
	}{
		{
			name: "Success - sale recorded with computed total",
			mockStore: &mockLedgerStore{
				sale: store.Sale{ID: 1, ProductID: 1, QuantitySold: 10, TotalCents: 1500, RecordedAt: testCreatedAt},
			},
			sale:        SaleCreateDto{ProductID: 1, Quantity: 10},
			expected:    &SaleDto{ID: 1, ProductID: 1, QuantitySold: 10, TotalCents: 1500, RecordedAt: "2025-03-14T09:30:00Z"},
			expectError: nil,
		},
		{
			name: "Error - product not found",
			mockStore: &mockLedgerStore{
				error: rerrors.ErrProductNotFound,
			},
			sale:        SaleCreateDto{ProductID: 404, Quantity: 10},
			expected:    nil,
			expectError: rerrors.ErrProductNotFound,
		},
		{
			name: "Error - insufficient stock",
			mockStore: &mockLedgerStore{
				error: rerrors.ErrInsufficientStock,
			},
			sale:        SaleCreateDto{ProductID: 1, Quantity: 10},
			expected:    nil,
			expectError: rerrors.ErrInsufficientStock,
		},
		{
			name: "Error - store error",
			mockStore: &mockLedgerStore{
				error: ErrStoreError,
			},
			sale:        SaleCreateDto{ProductID: 1, Quantity: 10},
			expected:    nil,
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewLedger(tc.mockStore)
			// when
			recorded, err := service.Sell(context.Background(), tc.sale)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, recorded)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, recorded)
		})
	}
}

func Test_Ledger_FindAll(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name        string
		mockStore   *mockLedgerStore
		expected    []SaleRowDto
		expectError error
	}{
		{
			name: "Success - sales found with product names",
			mockStore: &mockLedgerStore{
				sales: []store.SaleWithProduct{
					{
						Sale:        store.Sale{ID: 2, ProductID: 1, QuantitySold: 5, TotalCents: 750, RecordedAt: testCreatedAt},
						ProductName: "Pen",
					},
				},
			},
			expected: []SaleRowDto{
				{
					SaleDto:     SaleDto{ID: 2, ProductID: 1, QuantitySold: 5, TotalCents: 750, RecordedAt: "2025-03-14T09:30:00Z"},
					ProductName: "Pen",
				},
			},
			expectError: nil,
		},
		{
			name: "Success - empty ledger",
			mockStore: &mockLedgerStore{
				sales: []store.SaleWithProduct{},
			},
			expected:    []SaleRowDto{},
			expectError: nil,
		},
		{
			name: "Error - store error",
			mockStore: &mockLedgerStore{
				error: ErrStoreError,
			},
			expected:    nil,
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewLedger(tc.mockStore)
			// when
			found, err := service.FindAll(context.Background(), 0)
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
