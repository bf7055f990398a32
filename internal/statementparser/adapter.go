package statementparser

import (
	"fjacquet/auszug-csv/internal/common"
	"fjacquet/auszug-csv/internal/dialect"
	"fjacquet/auszug-csv/internal/logging"
	"fjacquet/auszug-csv/internal/models"
	"fjacquet/auszug-csv/internal/parsererror"
	"fjacquet/auszug-csv/internal/pdftext"
)

// Adapter implements models.Parser for PDF account statements by combining
// the page extractor with the parsing pipeline of this package.
type Adapter struct {
	dialect   *dialect.Dialect
	extractor pdftext.Extractor
	logger    logging.Logger
}

// NewAdapter creates a statement parser. A nil extractor defaults to the
// PDF-library extractor; a nil logger to a default text logger.
func NewAdapter(d *dialect.Dialect, extractor pdftext.Extractor, logger logging.Logger) *Adapter {
	if extractor == nil {
		extractor = pdftext.New()
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Adapter{dialect: d, extractor: extractor, logger: logger}
}

// SetLogger configures the logger used for diagnostics.
func (a *Adapter) SetLogger(logger logging.Logger) {
	if logger != nil {
		a.logger = logger
	}
}

// ParseFile extracts the page texts of the PDF and runs the statement
// pipeline. Partial results are returned alongside any chapter-level error.
func (a *Adapter) ParseFile(path string) ([]models.Transaction, error) {
	log := a.logger.WithField(logging.FieldParser, "statement")
	log.Info("Parsing statement PDF",
		logging.Field{Key: logging.FieldFile, Value: path})

	pages, err := a.extractor.ExtractPages(path)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "PDF account statement",
			Msg:            err.Error(),
		}
	}

	stmt, err := Parse(pages, a.dialect, a.logger)
	log.Info("Statement parsed",
		logging.Field{Key: logging.FieldCount, Value: len(stmt.Transactions)})
	return stmt.Transactions, err
}

// ValidateFormat checks that the file is a readable PDF whose text contains
// at least one of the dialect's chapter headings.
func (a *Adapter) ValidateFormat(path string) (bool, error) {
	pages, err := a.extractor.ExtractPages(path)
	if err != nil {
		return false, nil
	}
	for _, ch := range segmentChapters(sanitizePages(pages, a.dialect), a.dialect) {
		if ch.Name != a.dialect.HolderChapter {
			return true, nil
		}
	}
	return false, nil
}

// ConvertToCSV parses the statement and writes the standard CSV output.
// Rows extracted before a chapter-level failure are still written.
func (a *Adapter) ConvertToCSV(inputFile, outputFile string) error {
	transactions, err := a.ParseFile(inputFile)
	if err != nil && len(transactions) == 0 {
		return err
	}
	if err != nil {
		a.logger.WithError(err).Warn("Writing partial results after chapter failure",
			logging.Field{Key: logging.FieldInputFile, Value: inputFile})
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return common.WriteTransactionsToCSV(transactions, outputFile)
}
