package domain

import "github.com/shopspring/decimal"

// TracePoint records accumulated wealth at the end of one simulated year.
type TracePoint struct {
	Year   int             `yaml:"year" json:"year"`
	Wealth decimal.Decimal `yaml:"wealth" json:"wealth"`
}

// RetirementResult is the complete outcome of a retirement search:
// the first year at which accumulated wealth meets or exceeds the
// target, plus the chronological year-by-year trace that led there.
type RetirementResult struct {
	Params ModelParameters `json:"parameters"`
	Years  int             `json:"years"`
	Trace  []TracePoint    `json:"trace"`
}

// FinalWealth returns the accumulated wealth at the stopping year.
func (r *RetirementResult) FinalWealth() decimal.Decimal {
	if len(r.Trace) == 0 {
		return decimal.Zero
	}
	return r.Trace[len(r.Trace)-1].Wealth
}
