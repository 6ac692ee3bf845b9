package parser

import (
	"regexp"
	"strings"
)

// Turkish statements use both "25.08.2025" and "25/08/2025".
var datePattern = regexp.MustCompile(`\d{1,2}[./]\d{1,2}[./]\d{4}`)

// amountPattern anchors a numeric token to the end of the line, with an
// optional leading sign and an optional TL/TRY suffix. Group 1 is the
// sign, group 2 the numeric substring.
var amountPattern = regexp.MustCompile(`(-?)([\d.,]+)\s*(?:TL|TRY)?\s*$`)

// candidate is an assembled record before normalization and filtering.
// Amount and description are kept raw so the downstream steps see exactly
// what the statement said.
type candidate struct {
	date      string
	desc      string
	rawAmount string
	negative  bool
}

// pending holds a date seen on one line whose amount has not arrived yet.
// At most one pending record is alive at a time; a new unmatched date
// overwrites it, so lookback is bounded to exactly one record.
type pending struct {
	date string
	desc string
}

type assemblerState int

const (
	stateIdle assemblerState = iota
	stateAwaitingAmount
)

// assembleRecords walks the preprocessed lines and recovers one candidate
// per logical transaction, stitching together records whose date and
// amount landed on different physical lines.
func assembleRecords(lines []string) []candidate {
	var records []candidate
	state := stateIdle
	var carry pending

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		dateLoc := datePattern.FindStringIndex(line)
		amtLoc := amountPattern.FindStringSubmatchIndex(line)

		// A date's year digits look like a trailing amount on date-final
		// lines ("... 25/08/2025"): when the numeric substring starts
		// before the date match ends, there is no real amount here.
		if dateLoc != nil && amtLoc != nil && amtLoc[4] < dateLoc[1] {
			amtLoc = nil
		}

		switch {
		case dateLoc != nil && amtLoc != nil:
			records = append(records, candidate{
				date:      line[dateLoc[0]:dateLoc[1]],
				desc:      line[:dateLoc[0]] + " " + line[dateLoc[1]:amtLoc[0]],
				rawAmount: line[amtLoc[4]:amtLoc[5]],
				negative:  isNegativeAmount(line, amtLoc),
			})
			state = stateIdle

		case dateLoc != nil:
			carry = pending{
				date: line[dateLoc[0]:dateLoc[1]],
				desc: line[:dateLoc[0]] + " " + line[dateLoc[1]:],
			}
			state = stateAwaitingAmount

		case amtLoc != nil && state == stateAwaitingAmount:
			records = append(records, candidate{
				date:      carry.date,
				desc:      carry.desc + " " + line[:amtLoc[0]],
				rawAmount: line[amtLoc[4]:amtLoc[5]],
				negative:  isNegativeAmount(line, amtLoc),
			})
			state = stateIdle
		}
	}
	return records
}

// isNegativeAmount reports a refund/payment row: the amount carries a
// leading sign, or the whole line starts with a dash.
func isNegativeAmount(line string, amtLoc []int) bool {
	if amtLoc[2] != amtLoc[3] {
		return true
	}
	return strings.HasPrefix(strings.TrimSpace(line), "-")
}
