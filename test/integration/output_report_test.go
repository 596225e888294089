package integration

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/optionpricer/internal/calculation"
	"github.com/rpgo/optionpricer/internal/domain"
	"github.com/rpgo/optionpricer/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	cfg := loadExample(t)
	report, err := calculation.NewPricingEngine().Run(context.Background(), cfg)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, format := range []string{"console", "console-verbose", "json", "csv", "html", "paths-csv"} {
		files, err := output.GenerateReport(report, format, dir)
		require.NoError(t, err, format)
		require.Len(t, files, 1, format)
		fi, err := os.Stat(files[0])
		require.NoError(t, err, format)
		assert.NotZero(t, fi.Size(), format)
	}
}

func TestJSONReportRoundTrip(t *testing.T) {
	cfg := loadExample(t)
	cfg.Plot.Enabled = false
	report, err := calculation.NewPricingEngine().Run(context.Background(), cfg)
	require.NoError(t, err)

	files, err := output.GenerateReport(report, "json", t.TempDir())
	require.NoError(t, err)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)

	var decoded domain.PricingReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, report.BlackScholes, decoded.BlackScholes)
	assert.Equal(t, report.MonteCarlo[1].Barrier, decoded.MonteCarlo[1].Barrier)
	assert.Nil(t, decoded.Paths)
}

func TestSaveConfigurationRoundTrip(t *testing.T) {
	cfg := loadExample(t)
	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, output.SaveConfiguration(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "barrier_run: multi-step"))
}
