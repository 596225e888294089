package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/rpgo/optionpricer/internal/domain"
)

// PathsCSVExporter writes the sampled paths with one row per time step and one column per path.
type PathsCSVExporter struct{}

func (p PathsCSVExporter) Name() string      { return "paths-csv" }
func (p PathsCSVExporter) Extension() string { return "csv" }

func (p PathsCSVExporter) Format(report *domain.PricingReport) ([]byte, error) {
	sample := report.Paths
	if sample == nil || len(sample.Series) == 0 {
		return nil, ErrNoPathSample
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := make([]string, 0, len(sample.Series)+1)
	header = append(header, "Time")
	for i := range sample.Series {
		header = append(header, fmt.Sprintf("Path%d", i+1))
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for step, t := range sample.Times {
		row := make([]string, 0, len(header))
		row = append(row, fixed(t, 6))
		for _, series := range sample.Series {
			if step >= len(series) {
				return nil, fmt.Errorf("path sample is ragged: step %d missing", step)
			}
			row = append(row, fixed(series[step], 6))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
