package model

import (
	"fmt"
	"time"
)

type Transaction struct {
	ID          int
	Date        time.Time
	AmountCents int64
	Category    string
}

func (t Transaction) Key() int { return t.ID }

func (t Transaction) String() string {
	return fmt.Sprintf("Transaction #%d: %s for '%s' on %s",
		t.ID, FormatCents(t.AmountCents), t.Category, t.Date.Format(DateLayout))
}

// FormatCents renders an amount in cents as a dollar value, e.g. -12050 -> "-$120.50".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
