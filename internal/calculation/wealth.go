package calculation

import (
	"github.com/nestegg/horizon/internal/domain"
	"github.com/shopspring/decimal"
)

// CashSavedAtYear returns the new investment contribution made during
// the given year: that year's salary times the savings rate.
func CashSavedAtYear(params *domain.ModelParameters, year int) (decimal.Decimal, error) {
	salary, err := SalaryAtYear(params, year)
	if err != nil {
		return decimal.Zero, err
	}
	return salary.Mul(params.SavingsRate), nil
}

// WealthAtYear advances accumulated wealth by one year. Investment
// growth applies to the prior balance only; the current year's
// contribution earns no return until the following year. A negative
// return rate flows through arithmetically, so wealth can decrease
// when losses exceed contributions.
func WealthAtYear(params *domain.ModelParameters, year int, priorWealth decimal.Decimal) (decimal.Decimal, error) {
	saved, err := CashSavedAtYear(params, year)
	if err != nil {
		return decimal.Zero, err
	}
	return priorWealth.Mul(one.Add(params.InvestmentReturnRate)).Add(saved), nil
}
