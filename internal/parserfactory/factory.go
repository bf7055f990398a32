// Package parserfactory creates parser instances per input format.
package parserfactory

import (
	"fmt"

	"fjacquet/auszug-csv/internal/csvreader"
	"fjacquet/auszug-csv/internal/dialect"
	"fjacquet/auszug-csv/internal/logging"
	"fjacquet/auszug-csv/internal/models"
	"fjacquet/auszug-csv/internal/statementparser"
)

// ParserType defines the types of parsers available.
type ParserType string

const (
	// Statement parses the PDF account statement.
	Statement ParserType = "statement"
	// CSVExport parses the broker's CSV transaction export.
	CSVExport ParserType = "csv"
)

// GetParser returns a new parser for the given type, configured with the
// dialect and logger.
func GetParser(parserType ParserType, d *dialect.Dialect, logger logging.Logger) (models.Parser, error) {
	switch parserType {
	case Statement:
		return statementparser.NewAdapter(d, nil, logger), nil
	case CSVExport:
		return csvreader.NewAdapter(d, logger), nil
	default:
		return nil, fmt.Errorf("unknown parser type: %s", parserType)
	}
}
