package calculation

import (
	"fmt"

	"github.com/nestegg/horizon/internal/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// SalaryAtYear returns the projected salary for a given year index.
// Year 0 is the starting point and returns the starting salary
// unchanged. Cost-of-living raises compound every year; promotion
// raises compound once per completed promotion interval, so the
// promotion count uses integer (floor) division.
func SalaryAtYear(params *domain.ModelParameters, year int) (decimal.Decimal, error) {
	if year < 0 {
		return decimal.Zero, fmt.Errorf("%w: year must be non-negative, got %d", domain.ErrInvalidInput, year)
	}

	promotions := year / params.PromotionIntervalYears
	colGrowth := one.Add(params.CostOfLivingRate).Pow(decimal.NewFromInt(int64(year)))
	promotionGrowth := one.Add(params.PromotionRaiseRate).Pow(decimal.NewFromInt(int64(promotions)))

	return params.StartingSalary.Mul(colGrowth).Mul(promotionGrowth), nil
}
