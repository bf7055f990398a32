package models

import (
	"fjacquet/auszug-csv/internal/logging"
)

// Parser defines the interface every input-format parser implements.
// Implementations return custom error types from internal/parsererror for
// specific parsing failures and surface non-fatal anomalies through their
// logger rather than the return value.
type Parser interface {
	// ParseFile reads the input file and returns the extracted transactions
	// in statement order. A non-nil error may accompany a non-empty slice:
	// partial results are always returned.
	ParseFile(path string) ([]Transaction, error)

	// ValidateFormat checks whether the file looks like the format this
	// parser understands, without fully parsing it.
	ValidateFormat(path string) (bool, error)

	// ConvertToCSV parses the input file and writes the standard CSV output.
	ConvertToCSV(inputFile, outputFile string) error

	// SetLogger configures the logger used for diagnostics.
	SetLogger(logger logging.Logger)
}
