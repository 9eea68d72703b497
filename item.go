package collate

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Item is something with a label and an amount.
//
// Expenses carry a negative amount, income a positive one.
type Item struct {
	Label  string
	Amount decimal.Decimal
}

// NewItem creates an item.
func NewItem(label string, amount decimal.Decimal) Item {
	return Item{Label: label, Amount: amount}
}

// String returns the echoed form of the item, with the amount in its
// shortest decimal form.
func (i Item) String() string {
	return fmt.Sprintf("<Item %s amount=%s>", i.Label, i.Amount)
}
