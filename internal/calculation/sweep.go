package calculation

import (
	"context"
	"sync"

	"github.com/nestegg/horizon/internal/domain"
	"github.com/shopspring/decimal"
)

// SweepOutcome pairs one parameter set with its search result. Exactly
// one of Result and Err is set.
type SweepOutcome struct {
	Params domain.ModelParameters
	Result *domain.RetirementResult
	Err    error
}

// SweepRunner executes independent retirement searches in parallel.
// Each run owns its own loop state and parameter copy, so the only
// coordination is the bounded worker pool.
type SweepRunner struct {
	Engine        *Engine
	MaxConcurrent int
}

// NewSweepRunner creates a runner over the given engine.
func NewSweepRunner(engine *Engine) *SweepRunner {
	return &SweepRunner{
		Engine:        engine,
		MaxConcurrent: 10,
	}
}

// Run executes one retirement search per parameter set and returns the
// outcomes in input order. Cancelling ctx makes remaining runs fail
// with the context's error.
func (sr *SweepRunner) Run(ctx context.Context, paramSets []domain.ModelParameters) []SweepOutcome {
	maxConcurrent := sr.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	outcomes := make([]SweepOutcome, len(paramSets))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxConcurrent)

	for i := range paramSets {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire semaphore
			defer func() { <-semaphore }() // Release semaphore

			params := paramSets[idx]
			result, err := sr.Engine.YearsToRetirement(ctx, &params)
			outcomes[idx] = SweepOutcome{Params: params, Result: result, Err: err}
		}(i)
	}

	wg.Wait()
	return outcomes
}

// ReturnRateVariants builds one copy of base per rate with the
// investment return rate replaced, for sensitivity sweeps.
func ReturnRateVariants(base domain.ModelParameters, rates []decimal.Decimal) []domain.ModelParameters {
	variants := make([]domain.ModelParameters, len(rates))
	for i, rate := range rates {
		variant := base
		variant.InvestmentReturnRate = rate
		variants[i] = variant
	}
	return variants
}
