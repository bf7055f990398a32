// Package common provides the shared CSV input/output used by every parser,
// so all commands produce the same column layout.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"fjacquet/auszug-csv/internal/logging"
	"fjacquet/auszug-csv/internal/models"
)

var log = logging.NewLogrusAdapter("info", "text")

// Delimiter is the global CSV output delimiter, configurable via SetDelimiter.
var Delimiter rune = ','

// SetDelimiter sets the delimiter used for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger replaces the package logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// WriteTransactionsToCSV writes transactions to a CSV file in the
// standardized format. All parsers use this function so the output stays
// consistent across input formats.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.Info("Writing transactions to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- output path comes from user flags
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close CSV file")
		}
	}()

	writer := csv.NewWriter(file)
	writer.Comma = Delimiter
	if err := gocsv.MarshalCSV(&transactions, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing CSV records: %w", err)
	}
	return nil
}

// ReadCSVRows reads delimiter-separated data into a slice of row structs
// using gocsv. TRow carries the csv tags mapping columns to fields.
func ReadCSVRows[TRow any](r io.Reader, delimiter rune) ([]TRow, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	var rows []TRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}
	return rows, nil
}
