package output

import (
	"encoding/json"

	"github.com/nestegg/horizon/internal/domain"
)

// JSONFormatter serializes the retirement result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.RetirementResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
