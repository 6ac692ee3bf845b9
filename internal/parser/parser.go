// Package parser turns extracted statement text into grouped expenses.
//
// The pipeline is a single synchronous pass: line preprocessing (run-on
// repair), record assembly (a two-state pending-record machine), amount
// normalization, description cleanup, filtering and classification, then
// grouping by category. A labeled statement-total figure is extracted
// independently over the same lines.
package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mustafagonen/ekstreparse/internal/models"
)

// StatementParser parses one statement's extracted text per call. It holds
// no per-call state, so one instance serves concurrent callers.
type StatementParser struct {
	// Classifier overrides the built-in keyword tables; nil uses them.
	Classifier *Classifier
}

// Parse runs the full pipeline over one extracted text blob. Row-level
// failures (bad dates, unparsable amounts, informational lines, refunds)
// are absorbed silently; only missing input or a pipeline panic produces
// an unsuccessful result. Parsing the same text twice yields identical
// results.
func (p *StatementParser) Parse(text string) (result *models.ParseResult) {
	defer func() {
		if r := recover(); r != nil {
			result = failure(fmt.Sprintf("statement parsing failed: %v", r))
		}
	}()

	if strings.TrimSpace(text) == "" {
		return failure("no statement text to parse")
	}

	cl := p.Classifier
	if cl == nil {
		cl = DefaultClassifier()
	}

	lines := preprocessLines(text)

	var txns []models.Transaction
	for _, rec := range assembleRecords(lines) {
		txn, ok := finishRecord(rec, cl)
		if !ok {
			continue
		}
		txns = append(txns, txn)
	}

	result = &models.ParseResult{
		Success: true,
		Data:    groupByCategory(txns),
	}
	if total, ok := extractStatementTotal(lines); ok {
		result.StatementTotal = &total
	}
	return result
}

// finishRecord normalizes, cleans, filters and classifies one assembled
// candidate. ok=false drops the row and processing continues.
func finishRecord(rec candidate, cl *Classifier) (models.Transaction, bool) {
	if rec.negative {
		return models.Transaction{}, false
	}
	amount, err := normalizeAmount(rec.rawAmount)
	if err != nil {
		return models.Transaction{}, false
	}
	desc := cleanDescription(rec.desc)
	if utf8.RuneCountInString(desc) < 2 {
		return models.Transaction{}, false
	}
	if cl.IsInformational(desc) {
		return models.Transaction{}, false
	}
	return models.Transaction{
		Date:        rec.date,
		Description: desc,
		Amount:      amount,
		Category:    cl.Classify(desc),
	}, true
}

func failure(msg string) *models.ParseResult {
	return &models.ParseResult{
		Success: false,
		Error:   msg,
		Data:    []models.GroupedExpense{},
	}
}
