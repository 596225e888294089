package output

import (
	"encoding/json"
	"fmt"

	"github.com/rpgo/optionpricer/internal/domain"
)

// JSONFormatter serializes the pricing report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(report *domain.PricingReport) ([]byte, error) {
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return b, nil
}
