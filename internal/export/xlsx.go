package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/TabularInc/invoice-test-cases-generator/internal/domain/entity"
)

const transactionsSheet = "Transactions"

// TransactionsXLSX writes the transaction list into a single-sheet
// workbook with the same columns and row order as the canonical CSV.
func TransactionsXLSX(cases []entity.TestCase) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", transactionsSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headers := []string{"date", "counterparty", "description", "amount_eur"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(transactionsSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, tc := range sortedByDate(cases) {
		tx := tc.Transaction
		values := []interface{}{
			tx.Date.Format(entity.DateLayout),
			tx.Counterparty,
			tx.Description,
			tx.Amount,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(transactionsSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
