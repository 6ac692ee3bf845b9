// Package writer renders parse results as CSV and XLSX reports.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mustafagonen/ekstreparse/internal/models"
)

// CSVWriter writes grouped expenses to CSV format.
type CSVWriter struct {
	// IncludeSummary adds a per-category summary row before each group
	// and a statement-total row at the end.
	IncludeSummary bool
}

// WriteToFile writes the result to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, result *models.ParseResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, result)
}

// Write writes the result in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, result *models.ParseResult) error {
	cw := csv.NewWriter(out)
	defer cw.Flush()

	header := []string{"Category", "Date", "Description", "Amount"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, g := range result.Data {
		if w.IncludeSummary {
			row := []string{
				"# " + g.Category,
				"",
				strconv.Itoa(g.Count) + " transaction(s)",
				formatAmount(g.TotalAmount),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV summary row: %w", err)
			}
		}
		for _, t := range g.Transactions {
			row := []string{t.Category, t.Date, t.Description, formatAmount(t.Amount)}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	if w.IncludeSummary && result.StatementTotal != nil {
		row := []string{"# Statement total", "", "", formatAmount(*result.StatementTotal)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV total row: %w", err)
		}
	}

	return nil
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
