package parser

import (
	"regexp"
	"strings"
)

// runOnPattern finds the seam where an amount's two decimal digits run
// straight into the next record's date with no line break in between,
// e.g. "148.7825/08/2025". The capture group marks where the date begins.
var runOnPattern = regexp.MustCompile(`\d[.,]\d{2}(\d{1,2}[./]\d{1,2}[./])`)

// preprocessLines splits raw statement text into trimmed lines and repairs
// run-on lines. A split line keeps the amount prefix in place and splices
// the date-led remainder in as the next line, so the remainder is itself
// eligible for another split and for record extraction. Each scanned line
// is split at most once.
func preprocessLines(text string) []string {
	queue := strings.Split(text, "\n")
	out := make([]string, 0, len(queue))

	for i := 0; i < len(queue); i++ {
		line := strings.TrimSpace(queue[i])
		if line == "" {
			continue
		}
		if loc := runOnPattern.FindStringSubmatchIndex(line); loc != nil {
			out = append(out, strings.TrimSpace(line[:loc[2]]))
			rest := append([]string{line[loc[2]:]}, queue[i+1:]...)
			queue = append(queue[:i+1], rest...)
			continue
		}
		out = append(out, line)
	}
	return out
}
