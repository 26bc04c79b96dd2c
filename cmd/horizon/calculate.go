package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/nestegg/horizon/internal/calculation"
	"github.com/nestegg/horizon/internal/config"
	"github.com/nestegg/horizon/internal/domain"
	"github.com/nestegg/horizon/internal/output"
)

func newCalculateCmd() *cobra.Command {
	var (
		inputFile string
		format    string
		writeFile bool
		maxYears  int
		verbose   bool

		startingSalary     float64
		promotionInterval  int
		costOfLivingRate   float64
		promotionRaiseRate float64
		savingsRate        float64
		returnRate         float64
		targetWealth       float64
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run one retirement projection",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadParameters(inputFile)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("starting-salary") {
				params.StartingSalary = decimal.NewFromFloat(startingSalary)
			}
			if flags.Changed("promotion-interval") {
				params.PromotionIntervalYears = promotionInterval
			}
			if flags.Changed("col-rate") {
				params.CostOfLivingRate = decimal.NewFromFloat(costOfLivingRate)
			}
			if flags.Changed("promotion-raise") {
				params.PromotionRaiseRate = decimal.NewFromFloat(promotionRaiseRate)
			}
			if flags.Changed("savings-rate") {
				params.SavingsRate = decimal.NewFromFloat(savingsRate)
			}
			if flags.Changed("return-rate") {
				params.InvestmentReturnRate = decimal.NewFromFloat(returnRate)
			}
			if flags.Changed("target-wealth") {
				params.TargetWealth = decimal.NewFromFloat(targetWealth)
			}

			engine := calculation.NewEngine()
			engine.MaxYears = maxYears
			if verbose {
				engine.SetLogger(verboseLogger{})
			}

			result, err := engine.YearsToRetirement(cmd.Context(), params)
			if err != nil {
				return err
			}

			if writeFile {
				f := output.GetFormatterByName(format)
				if f == nil {
					// GenerateReport produces the detailed unsupported-format error
					return output.GenerateReport(cmd.OutOrStdout(), result, format)
				}
				ext := output.NormalizeFormatName(format)
				if ext == "console" {
					ext = "txt"
				}
				filename, err := output.WriteFormatted(f, result, ext)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
				return nil
			}
			return output.GenerateReport(cmd.OutOrStdout(), result, format)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "YAML parameter file (documented defaults used when omitted)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console, json, csv")
	cmd.Flags().BoolVar(&writeFile, "write", false, "write the report to a timestamped file instead of stdout")
	cmd.Flags().IntVar(&maxYears, "max-years", calculation.DefaultMaxYears, "maximum simulated years before giving up")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each simulated year to stderr")
	cmd.Flags().Float64Var(&startingSalary, "starting-salary", 0, "override starting salary")
	cmd.Flags().IntVar(&promotionInterval, "promotion-interval", 0, "override promotion interval in years")
	cmd.Flags().Float64Var(&costOfLivingRate, "col-rate", 0, "override cost of living raise rate")
	cmd.Flags().Float64Var(&promotionRaiseRate, "promotion-raise", 0, "override promotion raise rate")
	cmd.Flags().Float64Var(&savingsRate, "savings-rate", 0, "override savings rate")
	cmd.Flags().Float64Var(&returnRate, "return-rate", 0, "override investment return rate")
	cmd.Flags().Float64Var(&targetWealth, "target-wealth", 0, "override target wealth")
	return cmd
}

func loadParameters(inputFile string) (*domain.ModelParameters, error) {
	if inputFile == "" {
		params := domain.DefaultParameters()
		return &params, nil
	}
	return config.NewInputParser().LoadFromFile(inputFile)
}
