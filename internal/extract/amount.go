package extract

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/orders-tracker/constants"
)

// ParseAmount normalizes a currency string ("₹1,234.50", "-₹50.00") to a
// non-negative decimal. The leading minus on discount lines is
// presentational; only the magnitude is recorded. Any parse failure
// degrades to zero; the validator decides whether that means "no total"
// or "no discount".
func ParseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(s, constants.CurrencySymbol, "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
