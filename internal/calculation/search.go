package calculation

import (
	"context"
	"fmt"

	"github.com/nestegg/horizon/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultMaxYears bounds the retirement search so unreachable targets
// (for example a zero savings rate with no investment growth) fail
// with ErrNoConvergence instead of looping forever.
const DefaultMaxYears = 1000

// Engine drives the year-by-year retirement search.
type Engine struct {
	// MaxYears caps the number of simulated years. Zero or negative
	// falls back to DefaultMaxYears.
	MaxYears int
	Logger   Logger
}

// NewEngine creates an engine with the default year bound and a no-op logger.
func NewEngine() *Engine {
	return &Engine{
		MaxYears: DefaultMaxYears,
		Logger:   NopLogger{},
	}
}

// SetLogger replaces the engine logger. Nil is ignored.
func (e *Engine) SetLogger(l Logger) {
	if l != nil {
		e.Logger = l
	}
}

// YearsToRetirement iterates the wealth model from an empty starting
// state until accumulated wealth first meets or exceeds the target.
// The target comparison happens at the top of every cycle, so a run
// always simulates at least one year (wealth starts at 0 and the
// target is validated positive). The returned trace holds one point
// per simulated year in chronological order.
//
// ctx is checked between iterations; cancellation surfaces as the
// context's error. On any error the result is nil, never partial.
func (e *Engine) YearsToRetirement(ctx context.Context, params *domain.ModelParameters) (*domain.RetirementResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	maxYears := e.MaxYears
	if maxYears <= 0 {
		maxYears = DefaultMaxYears
	}

	wealth := decimal.Zero
	year := 0
	trace := make([]domain.TracePoint, 0, 64)

	for wealth.LessThan(params.TargetWealth) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if year >= maxYears {
			return nil, fmt.Errorf("%w: target wealth %s not reached within %d years",
				domain.ErrNoConvergence, params.TargetWealth.StringFixed(2), maxYears)
		}

		year++
		var err error
		wealth, err = WealthAtYear(params, year, wealth)
		if err != nil {
			return nil, err
		}
		trace = append(trace, domain.TracePoint{Year: year, Wealth: wealth})
		e.Logger.Debugf("year %d: wealth %s", year, wealth.StringFixed(2))
	}

	e.Logger.Infof("target wealth reached after %d years", year)
	return &domain.RetirementResult{
		Params: *params,
		Years:  year,
		Trace:  trace,
	}, nil
}
