package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/optionpricer/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with a Chart.js plot of the sampled paths.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"premium": FormatPremium,
	"pct":     FormatPercentage,
	"change":  FormatChange,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartDataset is one Chart.js line series.
type chartDataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

func (h HTMLFormatter) Format(report *domain.PricingReport) ([]byte, error) {
	var buf bytes.Buffer

	var labels []float64
	var datasets []chartDataset
	if report.Paths != nil {
		labels = report.Paths.Times
		datasets = make([]chartDataset, 0, len(report.Paths.Series))
		for i, series := range report.Paths.Series {
			datasets = append(datasets, chartDataset{Label: "Path " + intToString(i+1), Data: series})
		}
	}

	data := struct {
		*domain.PricingReport
		Diagnostics []RunDiagnostic
		Assumptions []string
		Labels      []float64
		Datasets    []chartDataset
	}{report, AnalyzeReport(report), GenerateAssumptions(report), labels, datasets}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
