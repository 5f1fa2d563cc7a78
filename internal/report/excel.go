// Package report builds spreadsheet exports of the sales ledger.
package report

import (
	"bytes"
	"fmt"

	"github.com/narayanastores/retail/internal/service"
	"github.com/xuri/excelize/v2"
)

// SalesWorkbook renders the given ledger rows into an xlsx workbook,
// one sale per row, newest first as provided.
func SalesWorkbook(sales []service.SaleRowDto) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"id", "product", "quantity_sold", "total_cents", "recorded_at"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	row := 2
	for _, s := range sales {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell name: %w", err)
		}
		values := []interface{}{s.ID, s.ProductName, s.QuantitySold, s.TotalCents, s.RecordedAt}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write sale row: %w", err)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf, nil
}
