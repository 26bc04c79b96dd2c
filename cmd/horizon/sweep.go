package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/nestegg/horizon/internal/calculation"
	"github.com/nestegg/horizon/internal/output"
)

func newSweepCmd() *cobra.Command {
	var (
		inputFile string
		ratesArg  string
		maxYears  int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep investment return rates across parallel projections",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadParameters(inputFile)
			if err != nil {
				return err
			}
			rates, err := parseRates(ratesArg)
			if err != nil {
				return err
			}

			engine := calculation.NewEngine()
			engine.MaxYears = maxYears
			runner := calculation.NewSweepRunner(engine)
			outcomes := runner.Run(cmd.Context(), calculation.ReturnRateVariants(*params, rates))

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-14s  %s\n", "Return rate", "Years")
			for _, outcome := range outcomes {
				rate := output.FormatPercentage(outcome.Params.InvestmentReturnRate)
				if outcome.Err != nil {
					fmt.Fprintf(w, "%-14s  error: %v\n", rate, outcome.Err)
					continue
				}
				fmt.Fprintf(w, "%-14s  %d\n", rate, outcome.Result.Years)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "YAML parameter file (documented defaults used when omitted)")
	cmd.Flags().StringVar(&ratesArg, "return-rates", "0.03,0.05,0.07", "comma-separated investment return rates")
	cmd.Flags().IntVar(&maxYears, "max-years", calculation.DefaultMaxYears, "maximum simulated years before giving up")
	return cmd
}

func parseRates(arg string) ([]decimal.Decimal, error) {
	parts := strings.Split(arg, ",")
	rates := make([]decimal.Decimal, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		rate, err := decimal.NewFromString(part)
		if err != nil {
			return nil, fmt.Errorf("invalid return rate %q: %w", part, err)
		}
		rates = append(rates, rate)
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("no return rates given")
	}
	return rates, nil
}
