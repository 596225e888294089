package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/optionpricer/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallConfig = `market:
  spot: 100
  strike: 105
  risk_free_rate: 0.05
  drift: 0.05
  volatility: 0.2
  maturity: 1
  barrier: 110
runs:
  - name: one-step
    num_steps: 1
    num_paths: 2000
  - name: weekly
    num_steps: 52
    num_paths: 2000
simulation:
  seed: 7
sensitivity:
  volatility_shocks: [1.1, 0.9]
  barrier_run: weekly
plot:
  enabled: true
  num_steps: 12
  num_paths: 200
  max_lines: 10
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "optpricer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallConfig), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPriceCommand_Console(t *testing.T) {
	out, err := execute(t, "price", "--config", writeConfig(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Black-Scholes price of a European call option is $8.0214")
	assert.Contains(t, out, "weekly MC price of a knock-in barrier call option is")
	assert.Contains(t, out, "Increasing the volatility by 10.00%")
}

func TestPriceCommand_SeedFlagIsReproducible(t *testing.T) {
	cfg := writeConfig(t)
	a, err := execute(t, "price", "--config", cfg, "--seed", "123", "--workers", "2", "--format", "verbose")
	require.NoError(t, err)
	b, err := execute(t, "price", "--config", cfg, "--seed", "123", "--format", "verbose")
	require.NoError(t, err)
	assert.Contains(t, a, "seed 123")
	// elapsed times differ, the prices do not
	strip := func(s string) string {
		var keep []string
		for _, line := range strings.Split(s, "\n") {
			if strings.Contains(line, "seed ") || strings.HasPrefix(line, "Generated:") {
				continue
			}
			keep = append(keep, line)
		}
		return strings.Join(keep, "\n")
	}
	assert.Equal(t, strip(a), strip(b))
}

func TestPriceCommand_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "price", "--config", writeConfig(t), "--format", "all", "--output-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(out, "Report written to"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestPriceCommand_UnknownFormat(t *testing.T) {
	_, err := execute(t, "price", "--config", writeConfig(t), "--format", "pdf", "--output-dir", t.TempDir())
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestPriceCommand_BadConfig(t *testing.T) {
	_, err := execute(t, "price", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read file")
}

func TestPriceCommand_EnvOverride(t *testing.T) {
	t.Setenv("OPTPRICER_WORKERS", "-1")
	_, err := execute(t, "price", "--config", writeConfig(t))
	assert.ErrorContains(t, err, "workers")
}

func TestSimulateCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "simulate", "--config", writeConfig(t), "--format", "paths-csv", "--steps", "4", "--paths", "30", "--max-lines", "3", "--output-dir", dir)
	require.NoError(t, err)
	require.Contains(t, out, "Report written to")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 6) // header + 5 time points
	assert.Equal(t, "Time,Path1,Path2,Path3", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0.000000,100.000000,"))
}

func TestSimulateCommand_InvalidSteps(t *testing.T) {
	_, err := execute(t, "simulate", "--config", writeConfig(t), "--steps", "0", "--output-dir", t.TempDir())
	assert.ErrorContains(t, err, "num_steps")
}

func TestSensitivityCommand(t *testing.T) {
	out, err := execute(t, "sensitivity", "--config", writeConfig(t), "--shocks", "1.2")
	require.NoError(t, err)
	assert.Contains(t, out, "Increasing the volatility by 20.00% (sigma = 24.00%)")
	assert.NotContains(t, out, "one-step MC price")
	assert.Contains(t, out, "weekly MC price of a European call option")

	_, err = execute(t, "sensitivity", "--config", writeConfig(t), "--barrier-run", "nope")
	assert.ErrorContains(t, err, `barrier run "nope"`)

	_, err = execute(t, "sensitivity", "--config", writeConfig(t), "--shocks", "-1")
	assert.ErrorContains(t, err, "volatility_shock")
}

func TestFormatsCommand(t *testing.T) {
	out, err := execute(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "console-verbose")
	assert.Contains(t, out, "paths-csv")
	assert.Contains(t, out, "json-pretty")
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generated.yaml")
	out, err := execute(t, "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration written to")

	_, err = execute(t, "init", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, "init", path, "--force")
	require.NoError(t, err)

	cfg, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfiguration(), cfg)
}
