package renderer

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/cgjones/collate"
	"github.com/shopspring/decimal"
)

// SumMarkdown renders per-label totals as a markdown table. When currency
// is not empty the totals are money-formatted in that currency; this is
// display only, amounts stay plain decimals everywhere else.
func SumMarkdown(items []collate.Item, currency string) string {
	var b strings.Builder
	b.WriteString("# Totals by label\n\n")
	b.WriteString("| Label | Total |\n")
	b.WriteString("|---|---:|\n")
	for _, item := range items {
		fmt.Fprintf(&b, "| %s | %s |\n", item.Label, Amount(item.Amount, currency))
	}
	return b.String()
}

// Amount returns the display form of an amount: fixed two decimals, or
// money-formatted when a currency code is given.
func Amount(v decimal.Decimal, currency string) string {
	if currency == "" {
		return v.StringFixed(2)
	}
	// to get a never nil currency, go through the money constructor
	cur := money.New(0, currency).Currency()
	minor := v.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}
