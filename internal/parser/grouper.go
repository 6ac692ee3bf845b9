package parser

import "github.com/mustafagonen/ekstreparse/internal/models"

// groupByCategory folds accepted transactions into category buckets, in
// first-seen category order. TotalAmount and Count stay equal to the
// aggregate of each bucket's transaction list.
func groupByCategory(txns []models.Transaction) []models.GroupedExpense {
	groups := []models.GroupedExpense{}
	index := make(map[string]int)

	for _, t := range txns {
		i, ok := index[t.Category]
		if !ok {
			i = len(groups)
			index[t.Category] = i
			groups = append(groups, models.GroupedExpense{Category: t.Category})
		}
		g := &groups[i]
		g.Count++
		g.TotalAmount += t.Amount
		g.Transactions = append(g.Transactions, t)
	}
	return groups
}
