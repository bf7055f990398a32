package statementparser

import (
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/auszug-csv/internal/dialect"
	"fjacquet/auszug-csv/internal/logging"
	"fjacquet/auszug-csv/internal/models"
)

// parseLedger extracts the transactions of one ledger chapter. Lines are
// scanned for date anchors; everything between two anchors is one
// transaction's raw segment. Lines before the first anchor are skipped as
// boilerplate that survived sanitization.
//
// An unknown month aborts the chapter, but the rows parsed up to that point
// are still returned together with the error.
func parseLedger(name string, lines []string, d *dialect.Dialect, logger logging.Logger) ([]models.Transaction, error) {
	log := logger.WithField(logging.FieldChapter, name)

	// The deduplicated table header may still lead the chapter content.
	start := 0
	if len(lines) > 0 && d.IsTableHeader(lines[0]) {
		start = 1
	}

	var txs []models.Transaction
	var prev *decimal.Decimal

	var segDate models.Date
	var segParts []string
	inSegment := false

	flush := func() {
		if !inSegment {
			return
		}
		tx := parseSegment(strings.Join(segParts, " "), segDate, prev, d, log)
		validateBalance(prev, &tx, d, log)
		txs = append(txs, tx)
		balance := tx.Balance
		prev = &balance
		inSegment = false
	}

	i := start
	for i < len(lines) {
		anchor, ok, err := scanDateAnchor(lines, i, d)
		if err != nil {
			flush()
			return txs, err
		}
		if ok {
			flush()
			segDate = models.Date{Time: anchor.date}
			segParts = segParts[:0]
			if anchor.leftover != "" {
				segParts = append(segParts, anchor.leftover)
			}
			inSegment = true
			i = anchor.next
			continue
		}
		if inSegment {
			segParts = append(segParts, lines[i])
		} else {
			log.Debug("Skipping line outside any transaction segment",
				logging.Field{Key: logging.FieldSegment, Value: lines[i]})
		}
		i++
	}
	flush()

	log.Info("Extracted transactions from chapter",
		logging.Field{Key: logging.FieldCount, Value: len(txs)})
	return txs, nil
}

// validateBalance checks arithmetic continuity between consecutive
// transactions: previous + received - spent must equal the asserted balance
// within the dialect's epsilon. A mismatch is a data-quality signal for the
// caller, not a processing error; it is reported and the record kept.
func validateBalance(prev *decimal.Decimal, tx *models.Transaction, d *dialect.Dialect, logger logging.Logger) {
	if prev == nil {
		// Opening row, nothing to check against.
		return
	}

	expected := prev.Add(tx.Amount())
	if expected.Sub(tx.Balance).Abs().GreaterThan(d.Epsilon()) {
		logger.Warn("Balance continuity mismatch",
			logging.Field{Key: logging.FieldDate, Value: tx.Date.Format(models.DateLayout)},
			logging.Field{Key: logging.FieldCategory, Value: tx.Category},
			logging.Field{Key: logging.FieldExpected, Value: expected.StringFixed(2)},
			logging.Field{Key: logging.FieldActual, Value: tx.Balance.StringFixed(2)})
	}
}
