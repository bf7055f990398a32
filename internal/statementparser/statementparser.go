// Package statementparser recovers structured transactions from the
// layout-flattened text of a multi-page account statement. The input is an
// ordered sequence of per-page text blobs with no reliable table structure;
// the output is the chronological transaction list with verified running
// balances.
//
// The pipeline is purely functional over its inputs: sanitize each page,
// segment the flattened stream into chapters, then walk every ledger chapter
// for date anchors and parse the segments between them. No state is shared
// across calls, so concurrent parses need nothing more than separate
// invocations.
package statementparser

import (
	"github.com/shopspring/decimal"

	"fjacquet/auszug-csv/internal/dialect"
	"fjacquet/auszug-csv/internal/logging"
	"fjacquet/auszug-csv/internal/models"
)

// Statement is the parsed form of one account statement.
type Statement struct {
	// Chapters holds every recognized section in document order.
	Chapters []Chapter
	// Transactions holds the rows of all ledger chapters in document order,
	// which the statement asserts to be chronological.
	Transactions []models.Transaction
}

// Parse extracts transactions from the ordered page texts of one statement.
//
// A fatal condition inside a ledger chapter (an unparseable month name)
// aborts that chapter only; rows parsed before it and other chapters are
// unaffected, so a non-nil error may accompany a non-empty result.
func Parse(pages []string, d *dialect.Dialect, logger logging.Logger) (*Statement, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	lines := sanitizePages(pages, d)
	chapters := segmentChapters(lines, d)

	stmt := &Statement{Chapters: chapters}

	var firstErr error
	for _, ch := range chapters {
		if !d.IsLedgerChapter(ch.Name) {
			continue
		}
		txs, err := parseLedger(ch.Name, ch.Lines, d, logger)
		stmt.Transactions = append(stmt.Transactions, txs...)
		if err != nil {
			logger.WithError(err).Error("Aborted chapter on corrupted date",
				logging.Field{Key: logging.FieldChapter, Value: ch.Name})
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return stmt, firstErr
}

// ParseText parses a single-page statement given as one text blob, the
// degenerate one-element page sequence.
func ParseText(text string, d *dialect.Dialect, logger logging.Logger) (*Statement, error) {
	return Parse([]string{text}, d, logger)
}

// OpeningBalance returns the balance the statement asserts before its first
// transaction, derived from the first row's balance and amount. The second
// return value is false when the statement has no transactions.
func (s *Statement) OpeningBalance() (decimal.Decimal, bool) {
	if len(s.Transactions) == 0 {
		return decimal.Zero, false
	}
	first := s.Transactions[0]
	return first.Balance.Sub(first.Amount()), true
}
