package collate

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// recordPattern matches one ledger line: an optional '+', a decimal
// amount, a single space, and the label. The label runs to the end of the
// line and may itself contain spaces.
var recordPattern = regexp.MustCompile(`^([+]?)(\d+(\.\d*)?) (.*)$`)

// ParseRecord parses a single ledger line into an Item.
//
// A leading '+' marks income and keeps the amount positive; without it the
// line is an expense and the amount is negated. Lines that do not match
// the record grammar are not records: ok is false and the caller should
// skip the line.
func ParseRecord(line string) (item Item, ok bool) {
	m := recordPattern.FindStringSubmatch(line)
	if m == nil {
		return Item{}, false
	}
	// The grammar allows a bare trailing dot ("3."), decimal does not.
	amount, err := decimal.NewFromString(strings.TrimSuffix(m[2], "."))
	if err != nil {
		return Item{}, false
	}
	if m[1] == "" {
		amount = amount.Neg()
	}
	return Item{Label: m[4], Amount: amount}, true
}

// ScanRecords feeds every record parsed from r to fn, in line order.
// Non-matching lines are skipped silently.
func ScanRecords(r io.Reader, fn func(Item) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		item, ok := ParseRecord(scanner.Text())
		if !ok {
			continue
		}
		if err := fn(item); err != nil {
			return err
		}
	}
	return scanner.Err()
}
