package models

// Transaction is a single purchase recovered from statement text.
// The date is kept as captured ("25/08/2025" or "25.08.2025"), not parsed
// into a calendar type, and the amount is always non-negative (refunds and
// payments are filtered out upstream).
type Transaction struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
}

// GroupedExpense aggregates transactions of one category.
type GroupedExpense struct {
	Category     string        `json:"category"`
	TotalAmount  float64       `json:"totalAmount"`
	Count        int           `json:"count"`
	Transactions []Transaction `json:"transactions"`
}

// ParseResult is the discriminated outcome of one parse call. Row-level
// failures are absorbed silently; only a pipeline-level failure (no input,
// extraction broke down entirely) sets Success to false.
type ParseResult struct {
	Success        bool             `json:"success"`
	Error          string           `json:"error,omitempty"`
	Data           []GroupedExpense `json:"data"`
	StatementTotal *float64         `json:"statementTotal,omitempty"`
}

// Category buckets used by the keyword classifier.
const (
	CategoryMarket        = "Market"
	CategoryDining        = "Dining"
	CategoryTransport     = "Transport"
	CategoryRent          = "Rent"
	CategoryUtilities     = "Utilities"
	CategoryClothing      = "Clothing"
	CategoryHealth        = "Health"
	CategoryEntertainment = "Entertainment"
	CategoryEducation     = "Education"
	CategoryOther         = "Other"
)
