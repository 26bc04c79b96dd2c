package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ModelParameters holds every assumption of a retirement projection.
// It is a value object: created once, never mutated, passed by
// read-only reference to every calculation.
type ModelParameters struct {
	StartingSalary         decimal.Decimal `yaml:"starting_salary" json:"starting_salary"`
	PromotionIntervalYears int             `yaml:"promotion_interval_years" json:"promotion_interval_years"`
	CostOfLivingRate       decimal.Decimal `yaml:"cost_of_living_rate" json:"cost_of_living_rate"`
	PromotionRaiseRate     decimal.Decimal `yaml:"promotion_raise_rate" json:"promotion_raise_rate"`
	SavingsRate            decimal.Decimal `yaml:"savings_rate" json:"savings_rate"`
	InvestmentReturnRate   decimal.Decimal `yaml:"investment_return_rate" json:"investment_return_rate"`
	TargetWealth           decimal.Decimal `yaml:"target_wealth" json:"target_wealth"`
}

// DefaultParameters returns the documented default assumptions. Every
// field is independently overridable by config files or CLI flags.
func DefaultParameters() ModelParameters {
	return ModelParameters{
		StartingSalary:         decimal.NewFromInt(60000),
		PromotionIntervalYears: 5,
		CostOfLivingRate:       decimal.NewFromFloat(0.02),
		PromotionRaiseRate:     decimal.NewFromFloat(0.15),
		SavingsRate:            decimal.NewFromFloat(0.25),
		InvestmentReturnRate:   decimal.NewFromFloat(0.05),
		TargetWealth:           decimal.NewFromInt(1500000),
	}
}

// Validate checks every parameter against its documented domain.
func (p *ModelParameters) Validate() error {
	if p.StartingSalary.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: starting salary must be positive, got %s", ErrInvalidInput, p.StartingSalary)
	}
	if p.PromotionIntervalYears < 1 {
		return fmt.Errorf("%w: promotion interval must be at least 1 year, got %d", ErrInvalidInput, p.PromotionIntervalYears)
	}
	if p.CostOfLivingRate.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: cost of living rate cannot be negative, got %s", ErrInvalidInput, p.CostOfLivingRate)
	}
	if p.PromotionRaiseRate.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: promotion raise rate cannot be negative, got %s", ErrInvalidInput, p.PromotionRaiseRate)
	}
	if p.SavingsRate.LessThan(decimal.Zero) || p.SavingsRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: savings rate must be between 0 and 1, got %s", ErrInvalidInput, p.SavingsRate)
	}
	if p.InvestmentReturnRate.LessThan(decimal.NewFromInt(-1)) {
		return fmt.Errorf("%w: investment return rate cannot be below -1, got %s", ErrInvalidInput, p.InvestmentReturnRate)
	}
	if p.TargetWealth.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: target wealth must be positive, got %s", ErrInvalidInput, p.TargetWealth)
	}
	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for ModelParameters.
// YAML scalars arrive as floats and are converted to decimal fields.
func (p *ModelParameters) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		StartingSalary         float64 `yaml:"starting_salary"`
		PromotionIntervalYears int     `yaml:"promotion_interval_years"`
		CostOfLivingRate       float64 `yaml:"cost_of_living_rate"`
		PromotionRaiseRate     float64 `yaml:"promotion_raise_rate"`
		SavingsRate            float64 `yaml:"savings_rate"`
		InvestmentReturnRate   float64 `yaml:"investment_return_rate"`
		TargetWealth           float64 `yaml:"target_wealth"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	p.StartingSalary = decimal.NewFromFloat(aux.StartingSalary)
	p.PromotionIntervalYears = aux.PromotionIntervalYears
	p.CostOfLivingRate = decimal.NewFromFloat(aux.CostOfLivingRate)
	p.PromotionRaiseRate = decimal.NewFromFloat(aux.PromotionRaiseRate)
	p.SavingsRate = decimal.NewFromFloat(aux.SavingsRate)
	p.InvestmentReturnRate = decimal.NewFromFloat(aux.InvestmentReturnRate)
	p.TargetWealth = decimal.NewFromFloat(aux.TargetWealth)
	return nil
}
