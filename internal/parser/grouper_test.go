package parser

import (
	"testing"

	"github.com/mustafagonen/ekstreparse/internal/models"
)

func TestGroupByCategory(t *testing.T) {
	txns := []models.Transaction{
		{Date: "25/08/2025", Description: "MİGROS", Amount: 10.50, Category: models.CategoryMarket},
		{Date: "25/08/2025", Description: "STARBUCKS", Amount: 85.00, Category: models.CategoryDining},
		{Date: "26/08/2025", Description: "A101", Amount: 20.25, Category: models.CategoryMarket},
		{Date: "27/08/2025", Description: "BİM", Amount: 5.00, Category: models.CategoryMarket},
	}

	groups := groupByCategory(txns)

	if len(groups) != 2 {
		t.Fatalf("groups: got %d, want 2", len(groups))
	}

	// First-seen category order.
	if groups[0].Category != models.CategoryMarket {
		t.Errorf("groups[0].Category: got %q, want %q", groups[0].Category, models.CategoryMarket)
	}
	if groups[1].Category != models.CategoryDining {
		t.Errorf("groups[1].Category: got %q, want %q", groups[1].Category, models.CategoryDining)
	}

	market := groups[0]
	if market.Count != 3 {
		t.Errorf("market count: got %d, want 3", market.Count)
	}
	if market.TotalAmount != 35.75 {
		t.Errorf("market total: got %f, want %f", market.TotalAmount, 35.75)
	}

	for _, g := range groups {
		if g.Count != len(g.Transactions) {
			t.Errorf("%s: count %d != len(transactions) %d", g.Category, g.Count, len(g.Transactions))
		}
		sum := 0.0
		for _, txn := range g.Transactions {
			sum += txn.Amount
		}
		if g.TotalAmount != sum {
			t.Errorf("%s: totalAmount %f != sum %f", g.Category, g.TotalAmount, sum)
		}
	}
}

func TestGroupByCategoryEmpty(t *testing.T) {
	groups := groupByCategory(nil)
	if groups == nil {
		t.Fatal("got nil, want empty slice")
	}
	if len(groups) != 0 {
		t.Errorf("groups: got %d, want 0", len(groups))
	}
}
