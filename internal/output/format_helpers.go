package output

import (
	"github.com/shopspring/decimal"

	moneydec "github.com/nestegg/horizon/pkg/decimal"
)

// FormatCurrency formats a decimal as USD currency rounded to cents.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return moneydec.NewMoneyFromDecimal(amount).Round().String()
}

// FormatPercentage formats a fractional rate as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
