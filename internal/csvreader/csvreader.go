// Package csvreader parses the broker's own CSV transaction export into the
// standard transaction model. The export carries the same columns the PDF
// statement prints, already structured, so no segmentation heuristics are
// needed here.
package csvreader

import (
	"os"
	"strings"

	"fjacquet/auszug-csv/internal/common"
	"fjacquet/auszug-csv/internal/dialect"
	"fjacquet/auszug-csv/internal/logging"
	"fjacquet/auszug-csv/internal/models"
	"fjacquet/auszug-csv/internal/parsererror"
	"fjacquet/auszug-csv/internal/textutils"
)

// ExportDelimiter is the field separator of the broker's CSV export.
const ExportDelimiter = ';'

// csvRow mirrors one line of the export file.
type csvRow struct {
	Date        models.Date `csv:"DATUM"`
	Category    string      `csv:"TYP"`
	Description string      `csv:"BESCHREIBUNG"`
	Incoming    string      `csv:"ZAHLUNGSEINGANG"`
	Outgoing    string      `csv:"ZAHLUNGSAUSGANG"`
	Balance     string      `csv:"SALDO"`
}

// Adapter implements models.Parser for the CSV export.
type Adapter struct {
	dialect *dialect.Dialect
	logger  logging.Logger
}

// NewAdapter creates a CSV export parser.
func NewAdapter(d *dialect.Dialect, logger logging.Logger) *Adapter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Adapter{dialect: d, logger: logger}
}

// SetLogger configures the logger used for diagnostics.
func (a *Adapter) SetLogger(logger logging.Logger) {
	if logger != nil {
		a.logger = logger
	}
}

// ParseFile reads the CSV export and returns its transactions.
func (a *Adapter) ParseFile(path string) ([]models.Transaction, error) {
	log := a.logger.WithField(logging.FieldParser, "csv")
	log.Info("Parsing CSV export",
		logging.Field{Key: logging.FieldFile, Value: path})

	file, err := os.Open(path) // #nosec G304 -- input path comes from user flags
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close file")
		}
	}()

	rows, err := common.ReadCSVRows[csvRow](file, ExportDelimiter)
	if err != nil {
		return nil, &parsererror.ParseError{
			Parser: "csv",
			Field:  "rows",
			Value:  path,
			Err:    err,
		}
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		tx, ok := a.convertRow(row, log)
		if !ok {
			continue
		}
		transactions = append(transactions, tx)
	}

	log.Info("CSV export parsed",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return transactions, nil
}

// convertRow maps one export row onto the transaction model. Rows without a
// date are skipped; malformed amounts degrade to absent values, mirroring
// the statement parser's behavior.
func (a *Adapter) convertRow(row csvRow, log logging.Logger) (models.Transaction, bool) {
	if row.Date.IsZero() {
		return models.Transaction{}, false
	}

	tx := models.Transaction{
		Date:        row.Date,
		Category:    strings.TrimSpace(row.Category),
		Description: textutils.CollapseWhitespace(row.Description),
		Currency:    a.dialect.Currency,
	}
	tx.ISIN = textutils.ExtractISIN(tx.Description)

	if _, known := a.dialect.Direction(tx.Category); !known && tx.Category != "" {
		log.Warn("Unrecognized category token",
			logging.Field{Key: logging.FieldCategory, Value: tx.Category})
	}

	if v := strings.TrimSpace(row.Incoming); v != "" {
		amount, err := models.ParseGermanAmount(v)
		if err != nil {
			log.WithError(err).Warn("Malformed incoming amount",
				logging.Field{Key: logging.FieldAmount, Value: v})
		} else {
			tx.SetReceived(amount)
		}
	}
	if v := strings.TrimSpace(row.Outgoing); v != "" && tx.Received == nil {
		amount, err := models.ParseGermanAmount(v)
		if err != nil {
			log.WithError(err).Warn("Malformed outgoing amount",
				logging.Field{Key: logging.FieldAmount, Value: v})
		} else {
			tx.SetSpent(amount)
		}
	}

	if v := strings.TrimSpace(row.Balance); v != "" {
		balance, err := models.ParseGermanAmount(v)
		if err != nil {
			log.WithError(err).Warn("Malformed balance",
				logging.Field{Key: logging.FieldAmount, Value: v})
		} else {
			tx.Balance = balance
		}
	}

	return tx, true
}

// ValidateFormat checks the file for the export's header line.
func (a *Adapter) ValidateFormat(path string) (bool, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- input path comes from user flags
	if err != nil {
		return false, err
	}
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	first := strings.SplitN(string(head), "\n", 2)[0]
	return strings.Contains(first, "DATUM") && strings.Contains(first, "SALDO"), nil
}

// ConvertToCSV parses the export and writes the standard CSV output.
func (a *Adapter) ConvertToCSV(inputFile, outputFile string) error {
	transactions, err := a.ParseFile(inputFile)
	if err != nil {
		return err
	}
	return common.WriteTransactionsToCSV(transactions, outputFile)
}
