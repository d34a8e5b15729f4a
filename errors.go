package policond

import "errors"

// Sentinel errors of the module. Only ErrInvalidConfig is returned by
// this module (wrapped by Config.Validate); no package here returns the
// other four.
var (
	// ErrUnsupportedFormat names an unrecognized document format.
	ErrUnsupportedFormat = errors.New("policond: unsupported document format")

	// ErrNoProvider names ingestion without a configured language-model
	// provider.
	ErrNoProvider = errors.New("policond: no language-model provider configured")

	// ErrEmptyExtraction names an extraction-input file containing no
	// parseable lines.
	ErrEmptyExtraction = errors.New("policond: extraction input contained no claims")

	// ErrInvalidConfig is returned for invalid configuration values.
	ErrInvalidConfig = errors.New("policond: invalid configuration")

	// ErrReportNotFound names a report file that cannot be opened for
	// post-processing.
	ErrReportNotFound = errors.New("policond: report file not found")
)
