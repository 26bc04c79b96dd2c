package output

import (
	"bytes"
	"fmt"

	"github.com/nestegg/horizon/internal/domain"
)

// ConsoleFormatter renders a retirement result as human-readable text:
// the assumptions, the year-by-year wealth trace, and the stopping year.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.RetirementResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	p := result.Params

	fmt.Fprintln(buf, "RETIREMENT HORIZON")
	fmt.Fprintln(buf, "==================")
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "Assumptions:")
	fmt.Fprintf(buf, "  Starting salary:      %s\n", FormatCurrency(p.StartingSalary))
	fmt.Fprintf(buf, "  Promotion interval:   every %d years\n", p.PromotionIntervalYears)
	fmt.Fprintf(buf, "  Cost of living raise: %s\n", FormatPercentage(p.CostOfLivingRate))
	fmt.Fprintf(buf, "  Promotion raise:      %s\n", FormatPercentage(p.PromotionRaiseRate))
	fmt.Fprintf(buf, "  Savings rate:         %s\n", FormatPercentage(p.SavingsRate))
	fmt.Fprintf(buf, "  Investment return:    %s\n", FormatPercentage(p.InvestmentReturnRate))
	fmt.Fprintf(buf, "  Target wealth:        %s\n", FormatCurrency(p.TargetWealth))
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "%5s  %s\n", "Year", "Wealth")
	for _, point := range result.Trace {
		fmt.Fprintf(buf, "%5d  %s\n", point.Year, FormatCurrency(point.Wealth))
	}
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "Retirement possible after %d years with %s saved.\n",
		result.Years, FormatCurrency(result.FinalWealth()))

	return buf.Bytes(), nil
}
