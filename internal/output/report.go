package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/optionpricer/internal/domain"
	"gopkg.in/yaml.v3"
)

// allFormats are the formatters written by GenerateReport(..., "all", ...).
var allFormats = []string{"console-verbose", "csv", "json", "html", "paths-csv"}

// GenerateReport writes the report in the named format to dir and returns the files written.
// "all" writes every file format; paths-csv is skipped there when the report has no path sample.
func GenerateReport(report *domain.PricingReport, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, name := range allFormats {
			if name == "paths-csv" && report.Paths == nil {
				continue
			}
			file, err := WriteFormatted(GetFormatterByName(name), report, dir)
			if err != nil {
				return files, fmt.Errorf("%s: %w", name, err)
			}
			files = append(files, file)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s, all (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	file, err := WriteFormatted(f, report, dir)
	if err != nil {
		return nil, err
	}
	return []string{file}, nil
}

// SaveConfiguration writes a configuration as YAML so it can be edited and passed back with --config.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
