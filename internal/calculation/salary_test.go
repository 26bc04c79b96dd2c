package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestegg/horizon/internal/domain"
)

func TestSalaryAtYearZero(t *testing.T) {
	params := domain.DefaultParameters()

	salary, err := SalaryAtYear(&params, 0)
	require.NoError(t, err)
	assert.True(t, salary.Equal(params.StartingSalary),
		"year 0 must return the starting salary unchanged, got %s", salary)
}

func TestSalaryAtYearNegative(t *testing.T) {
	params := domain.DefaultParameters()

	_, err := SalaryAtYear(&params, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSalaryAtYearPromotionBoundary(t *testing.T) {
	params := domain.DefaultParameters()

	tests := []struct {
		name     string
		year     int
		expected decimal.Decimal
	}{
		{
			// One year short of the interval: cost of living only.
			name:     "no promotion at year 4",
			year:     4,
			expected: decimal.RequireFromString("64945.9296"),
		},
		{
			// Exactly one completed interval: one promotion raise.
			name:     "one promotion at year 5",
			year:     5,
			expected: decimal.RequireFromString("76181.5754208"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			salary, err := SalaryAtYear(&params, tt.year)
			require.NoError(t, err)
			assert.True(t, salary.Equal(tt.expected),
				"Expected %s, got %s", tt.expected, salary)
		})
	}
}

func TestSalaryFloorDivisionForPromotions(t *testing.T) {
	params := domain.DefaultParameters()
	params.CostOfLivingRate = decimal.Zero

	// With no cost of living raises the salary is flat inside each
	// promotion interval and steps up only at exact multiples.
	salary4, err := SalaryAtYear(&params, 4)
	require.NoError(t, err)
	assert.True(t, salary4.Equal(params.StartingSalary))

	salary9, err := SalaryAtYear(&params, 9)
	require.NoError(t, err)
	expectedOnePromo := params.StartingSalary.Mul(decimal.NewFromFloat(1.15))
	assert.True(t, salary9.Equal(expectedOnePromo))

	salary10, err := SalaryAtYear(&params, 10)
	require.NoError(t, err)
	expectedTwoPromos := expectedOnePromo.Mul(decimal.NewFromFloat(1.15))
	assert.True(t, salary10.Equal(expectedTwoPromos))
}

func TestSalaryNonDecreasing(t *testing.T) {
	params := domain.DefaultParameters()

	prev, err := SalaryAtYear(&params, 0)
	require.NoError(t, err)
	for year := 1; year <= 60; year++ {
		salary, err := SalaryAtYear(&params, year)
		require.NoError(t, err)
		assert.True(t, salary.GreaterThanOrEqual(prev),
			"salary decreased from %s to %s at year %d", prev, salary, year)
		prev = salary
	}
}

func TestSalaryAtYearIdempotent(t *testing.T) {
	params := domain.DefaultParameters()

	first, err := SalaryAtYear(&params, 17)
	require.NoError(t, err)
	second, err := SalaryAtYear(&params, 17)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}
