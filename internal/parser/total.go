package parser

import "regexp"

// totalLabels are the folded forms of the "total due" phrasings seen
// across issuers ("Dönem Borcu", "Toplam Borç", "Ödenecek Tutar", ...).
// Folding makes the scan tolerant of lost diacritics.
var totalLabels = []string{
	"donem borcu",
	"toplam borc",
	"ekstre borcu",
	"odenecek tutar",
	"toplam tutar",
	"genel toplam",
}

var trailingAmount = regexp.MustCompile(`([\d.,]+)\s*(?:TL|TRY)?\s*$`)

// extractStatementTotal scans the raw line set for a labeled total-due
// figure. The first labeled line with a parsable trailing amount wins;
// statements without a visible total report ok=false, which is valid
// input, not an error.
func extractStatementTotal(lines []string) (float64, bool) {
	for _, line := range lines {
		folded := whitespaceRun.ReplaceAllString(foldKey(line), " ")
		if !containsTotalLabel(folded) {
			continue
		}
		m := trailingAmount.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		v, err := normalizeAmount(m[1])
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}

func containsTotalLabel(folded string) bool {
	for _, label := range totalLabels {
		if containsFold(folded, label) {
			return true
		}
	}
	return false
}

func containsFold(folded, label string) bool {
	return len(label) > 0 && indexOfSubstring(folded, label) >= 0
}

func indexOfSubstring(s, substr string) int {
	if len(substr) > len(s) {
		return -1
	}
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
