package config

import (
	"fmt"
	"os"

	"github.com/nestegg/horizon/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of model parameter files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// fileParameters mirrors ModelParameters with optional fields so a
// file may override any subset of the documented defaults.
type fileParameters struct {
	StartingSalary         *float64 `yaml:"starting_salary"`
	PromotionIntervalYears *int     `yaml:"promotion_interval_years"`
	CostOfLivingRate       *float64 `yaml:"cost_of_living_rate"`
	PromotionRaiseRate     *float64 `yaml:"promotion_raise_rate"`
	SavingsRate            *float64 `yaml:"savings_rate"`
	InvestmentReturnRate   *float64 `yaml:"investment_return_rate"`
	TargetWealth           *float64 `yaml:"target_wealth"`
}

// LoadFromFile loads model parameters from a YAML file. Omitted fields
// keep their defaults; the merged result is validated before return.
func (ip *InputParser) LoadFromFile(filename string) (*domain.ModelParameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes YAML bytes over the defaults and validates the result.
func (ip *InputParser) Parse(data []byte) (*domain.ModelParameters, error) {
	var file fileParameters
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	params := domain.DefaultParameters()
	if file.StartingSalary != nil {
		params.StartingSalary = decimal.NewFromFloat(*file.StartingSalary)
	}
	if file.PromotionIntervalYears != nil {
		params.PromotionIntervalYears = *file.PromotionIntervalYears
	}
	if file.CostOfLivingRate != nil {
		params.CostOfLivingRate = decimal.NewFromFloat(*file.CostOfLivingRate)
	}
	if file.PromotionRaiseRate != nil {
		params.PromotionRaiseRate = decimal.NewFromFloat(*file.PromotionRaiseRate)
	}
	if file.SavingsRate != nil {
		params.SavingsRate = decimal.NewFromFloat(*file.SavingsRate)
	}
	if file.InvestmentReturnRate != nil {
		params.InvestmentReturnRate = decimal.NewFromFloat(*file.InvestmentReturnRate)
	}
	if file.TargetWealth != nil {
		params.TargetWealth = decimal.NewFromFloat(*file.TargetWealth)
	}

	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}
	return &params, nil
}
