package policond

import "github.com/bbiangul/policond/llm"

// Config holds all configuration for the analysis pipeline.
type Config struct {
	// Chat configures the language-model provider used by ingest for
	// sentence-level extraction.
	Chat llm.Config `json:"chat"`

	// IngestWorkers bounds the number of concurrent chat requests a
	// batch ingestion run issues. Defaults to 4.
	IngestWorkers int `json:"ingest_workers"`

	// ReportIndent records whether report JSON is written with
	// indentation. The report package does not read it: report.Write
	// always indents.
	ReportIndent bool `json:"report_indent"`
}

// DefaultConfig returns a Config with the engine's defaults filled in.
func DefaultConfig() Config {
	return Config{
		IngestWorkers: 4,
		ReportIndent:  true,
	}
}

// Validate reports whether c is usable, wrapping ErrInvalidConfig with
// the specific problem found.
func (c Config) Validate() error {
	if c.IngestWorkers <= 0 {
		return wrapInvalidConfig("ingest_workers must be positive")
	}
	return nil
}

func wrapInvalidConfig(reason string) error {
	return &invalidConfigError{reason: reason}
}

type invalidConfigError struct {
	reason string
}

func (e *invalidConfigError) Error() string {
	return ErrInvalidConfig.Error() + ": " + e.reason
}

func (e *invalidConfigError) Unwrap() error {
	return ErrInvalidConfig
}
