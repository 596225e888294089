package output

import "errors"

// ErrUnsupportedFormat is returned when a format name matches no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ErrNoPathSample is returned by formatters that need sampled paths when the report has none.
var ErrNoPathSample = errors.New("report has no path sample (enable plot in the configuration)")
