package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultParameters(t *testing.T) {
	params := DefaultParameters()

	assert.True(t, params.StartingSalary.Equal(decimal.NewFromInt(60000)))
	assert.Equal(t, 5, params.PromotionIntervalYears)
	assert.True(t, params.CostOfLivingRate.Equal(decimal.NewFromFloat(0.02)))
	assert.True(t, params.PromotionRaiseRate.Equal(decimal.NewFromFloat(0.15)))
	assert.True(t, params.SavingsRate.Equal(decimal.NewFromFloat(0.25)))
	assert.True(t, params.InvestmentReturnRate.Equal(decimal.NewFromFloat(0.05)))
	assert.True(t, params.TargetWealth.Equal(decimal.NewFromInt(1500000)))
	assert.NoError(t, params.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *ModelParameters)
	}{
		{
			name:   "zero starting salary",
			mutate: func(p *ModelParameters) { p.StartingSalary = decimal.Zero },
		},
		{
			name:   "negative starting salary",
			mutate: func(p *ModelParameters) { p.StartingSalary = decimal.NewFromInt(-1) },
		},
		{
			name:   "zero promotion interval",
			mutate: func(p *ModelParameters) { p.PromotionIntervalYears = 0 },
		},
		{
			name:   "negative cost of living rate",
			mutate: func(p *ModelParameters) { p.CostOfLivingRate = decimal.NewFromFloat(-0.01) },
		},
		{
			name:   "negative promotion raise rate",
			mutate: func(p *ModelParameters) { p.PromotionRaiseRate = decimal.NewFromFloat(-0.01) },
		},
		{
			name:   "savings rate above 1",
			mutate: func(p *ModelParameters) { p.SavingsRate = decimal.NewFromFloat(1.5) },
		},
		{
			name:   "negative savings rate",
			mutate: func(p *ModelParameters) { p.SavingsRate = decimal.NewFromFloat(-0.25) },
		},
		{
			name:   "return rate below -1",
			mutate: func(p *ModelParameters) { p.InvestmentReturnRate = decimal.NewFromFloat(-1.5) },
		},
		{
			name:   "zero target wealth",
			mutate: func(p *ModelParameters) { p.TargetWealth = decimal.Zero },
		},
		{
			name:   "negative target wealth",
			mutate: func(p *ModelParameters) { p.TargetWealth = decimal.NewFromInt(-100) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := DefaultParameters()
			tt.mutate(&params)
			err := params.Validate()
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestValidateBoundaryRates(t *testing.T) {
	params := DefaultParameters()
	params.SavingsRate = decimal.Zero
	assert.NoError(t, params.Validate())

	params.SavingsRate = decimal.NewFromInt(1)
	assert.NoError(t, params.Validate())

	params = DefaultParameters()
	params.InvestmentReturnRate = decimal.NewFromInt(-1)
	assert.NoError(t, params.Validate())
}

func TestUnmarshalYAML(t *testing.T) {
	doc := `
starting_salary: 40000
promotion_interval_years: 5
cost_of_living_rate: 0.02
promotion_raise_rate: 0.15
savings_rate: 0.25
investment_return_rate: 0.05
target_wealth: 1500000
`
	var params ModelParameters
	require.NoError(t, yaml.Unmarshal([]byte(doc), &params))

	assert.True(t, params.StartingSalary.Equal(decimal.NewFromInt(40000)))
	assert.Equal(t, 5, params.PromotionIntervalYears)
	assert.True(t, params.SavingsRate.Equal(decimal.NewFromFloat(0.25)))
	assert.True(t, params.TargetWealth.Equal(decimal.NewFromInt(1500000)))
	assert.NoError(t, params.Validate())
}
