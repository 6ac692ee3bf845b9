package writer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/mustafagonen/ekstreparse/internal/models"
)

const (
	summarySheet      = "Summary"
	transactionsSheet = "Transactions"
)

// XLSXWriter writes grouped expenses as a two-sheet workbook: a category
// summary and the flat transaction list.
type XLSXWriter struct{}

// WriteToFile writes the result to an .xlsx file at the given path.
func (w *XLSXWriter) WriteToFile(path string, result *models.ParseResult) error {
	f, err := w.build(result)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %q: %w", path, err)
	}
	return nil
}

// Write writes the workbook to the given writer.
func (w *XLSXWriter) Write(out io.Writer, result *models.ParseResult) error {
	f, err := w.build(result)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (w *XLSXWriter) build(result *models.ParseResult) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to set up summary sheet: %w", err)
	}

	if err := f.SetSheetRow(summarySheet, "A1", &[]interface{}{"Category", "Count", "Total"}); err != nil {
		return nil, fmt.Errorf("failed to write summary header: %w", err)
	}
	row := 2
	for _, g := range result.Data {
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(summarySheet, cell, &[]interface{}{g.Category, g.Count, g.TotalAmount}); err != nil {
			return nil, fmt.Errorf("failed to write summary row: %w", err)
		}
		row++
	}
	if result.StatementTotal != nil {
		cell := fmt.Sprintf("A%d", row+1)
		if err := f.SetSheetRow(summarySheet, cell, &[]interface{}{"Statement total", "", *result.StatementTotal}); err != nil {
			return nil, fmt.Errorf("failed to write statement total: %w", err)
		}
	}

	if _, err := f.NewSheet(transactionsSheet); err != nil {
		return nil, fmt.Errorf("failed to create transactions sheet: %w", err)
	}
	if err := f.SetSheetRow(transactionsSheet, "A1", &[]interface{}{"Category", "Date", "Description", "Amount"}); err != nil {
		return nil, fmt.Errorf("failed to write transactions header: %w", err)
	}
	row = 2
	for _, g := range result.Data {
		for _, t := range g.Transactions {
			cell := fmt.Sprintf("A%d", row)
			if err := f.SetSheetRow(transactionsSheet, cell, &[]interface{}{t.Category, t.Date, t.Description, t.Amount}); err != nil {
				return nil, fmt.Errorf("failed to write transaction row: %w", err)
			}
			row++
		}
	}

	return f, nil
}
