package writer

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/mustafagonen/ekstreparse/internal/models"
)

func sampleResult() *models.ParseResult {
	total := 1500.00
	return &models.ParseResult{
		Success: true,
		Data: []models.GroupedExpense{
			{
				Category:    models.CategoryMarket,
				TotalAmount: 169.28,
				Count:       2,
				Transactions: []models.Transaction{
					{Date: "25/08/2025", Description: "MİGROS ATAŞEHİR", Amount: 148.78, Category: models.CategoryMarket},
					{Date: "26/08/2025", Description: "A101 MERKEZ", Amount: 20.50, Category: models.CategoryMarket},
				},
			},
			{
				Category:    models.CategoryDining,
				TotalAmount: 85.50,
				Count:       1,
				Transactions: []models.Transaction{
					{Date: "26/08/2025", Description: "STARBUCKS KANYON", Amount: 85.50, Category: models.CategoryDining},
				},
			},
		},
		StatementTotal: &total,
	}
}

func TestCSVWriterWithSummary(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeSummary: true}
	if err := w.Write(&buf, sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	// Header + 2 summary rows + 3 transactions + statement total.
	if len(rows) != 7 {
		t.Fatalf("rows: got %d, want 7", len(rows))
	}

	if rows[0][0] != "Category" || rows[0][3] != "Amount" {
		t.Errorf("header: got %v", rows[0])
	}
	if rows[1][0] != "# Market" || rows[1][3] != "169.28" {
		t.Errorf("summary row: got %v", rows[1])
	}
	if rows[2][1] != "25/08/2025" || rows[2][2] != "MİGROS ATAŞEHİR" || rows[2][3] != "148.78" {
		t.Errorf("transaction row: got %v", rows[2])
	}
	last := rows[len(rows)-1]
	if last[0] != "# Statement total" || last[3] != "1500.00" {
		t.Errorf("total row: got %v", last)
	}
}

func TestCSVWriterWithoutSummary(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{}
	if err := w.Write(&buf, sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	// Header + 3 transactions, no summary or total rows.
	if len(rows) != 4 {
		t.Fatalf("rows: got %d, want 4", len(rows))
	}
	if strings.HasPrefix(rows[1][0], "#") {
		t.Errorf("unexpected summary row: %v", rows[1])
	}
}

func TestCSVWriterEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeSummary: true}
	result := &models.ParseResult{Success: true, Data: []models.GroupedExpense{}}
	if err := w.Write(&buf, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows: got %d, want 1 (header only)", len(rows))
	}
}
