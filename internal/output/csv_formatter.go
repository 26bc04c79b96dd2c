package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/nestegg/horizon/internal/domain"
)

// CSVFormatter exports the wealth trace as CSV (one row per simulated year).
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.RetirementResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"Year", "Wealth"}); err != nil {
		return nil, err
	}
	for _, point := range result.Trace {
		row := []string{
			strconv.Itoa(point.Year),
			point.Wealth.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
