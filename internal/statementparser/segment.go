package statementparser

import (
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/auszug-csv/internal/dialect"
	"fjacquet/auszug-csv/internal/logging"
	"fjacquet/auszug-csv/internal/models"
	"fjacquet/auszug-csv/internal/textutils"
)

// parseSegment extracts one transaction from the raw text between two date
// anchors. It never fails outright: whatever cannot be classified is
// reported through the logger and the record is produced best-effort, so one
// malformed row cannot lose a whole chapter.
func parseSegment(text string, date models.Date, prev *decimal.Decimal, d *dialect.Dialect, logger logging.Logger) models.Transaction {
	text = textutils.CollapseWhitespace(text)

	tx := models.Transaction{
		Date:     date,
		Currency: d.Currency,
	}

	category, known := matchCategory(text, d)
	tx.Category = category
	if !known {
		// Either the vocabulary needs a new entry or the scanner
		// desynchronized; keep the token verbatim either way.
		logger.Warn("Unrecognized category token",
			logging.Field{Key: logging.FieldCategory, Value: category},
			logging.Field{Key: logging.FieldSegment, Value: text})
	}

	matches := d.AmountRegexp().FindAllString(text, -1)
	if len(matches) < 2 {
		// Statements print amount and running balance on every row; fewer
		// matches means the row is monetarily incomplete.
		logger.Warn("Segment has fewer than two monetary values",
			logging.Field{Key: logging.FieldSegment, Value: text},
			logging.Field{Key: logging.FieldCount, Value: len(matches)})
		if prev != nil {
			tx.Balance = *prev
		}
		tx.Description = buildDescription(text, category, nil)
		return tx
	}

	// The row always ends "... amount balance"; earlier monetary substrings
	// (prices, fees quoted inside the description) stay in the free text.
	amountStr := matches[len(matches)-2]
	balanceStr := matches[len(matches)-1]

	balance, err := models.ParseGermanAmount(balanceStr)
	if err != nil {
		logger.Warn("Malformed balance value",
			logging.Field{Key: logging.FieldActual, Value: balanceStr},
			logging.Field{Key: logging.FieldSegment, Value: text})
	}
	tx.Balance = balance

	amount, err := models.ParseGermanAmount(amountStr)
	if err != nil {
		logger.Warn("Malformed amount value",
			logging.Field{Key: logging.FieldAmount, Value: amountStr},
			logging.Field{Key: logging.FieldSegment, Value: text})
	} else {
		switch classifyFlow(category, balance, prev, d, logger) {
		case dialect.FlowIncoming:
			tx.SetReceived(amount)
		default:
			tx.SetSpent(amount)
		}
	}

	tx.Description = buildDescription(text, category, []string{amountStr, balanceStr})
	tx.ISIN = textutils.ExtractISIN(tx.Description)

	return tx
}

// matchCategory finds the vocabulary entry the segment starts with. The
// entry must end at a whitespace boundary so that a category-like word inside
// a security description cannot match. Falls back to the first token,
// reported by the caller as an anomaly.
func matchCategory(text string, d *dialect.Dialect) (string, bool) {
	for _, cat := range d.Categories() {
		if !strings.HasPrefix(text, cat) {
			continue
		}
		if len(text) == len(cat) || text[len(cat)] == ' ' {
			return cat, true
		}
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], false
}

// classifyFlow decides the cash-flow direction. The printed balance movement
// is authoritative when a prior balance exists, because category labels do
// not reliably predict direction (a trade can be a purchase or a sale). The
// category partition is only a tie-breaker for the opening row.
func classifyFlow(category string, balance decimal.Decimal, prev *decimal.Decimal, d *dialect.Dialect, logger logging.Logger) dialect.Flow {
	if prev != nil {
		if balance.GreaterThan(*prev) {
			return dialect.FlowIncoming
		}
		return dialect.FlowOutgoing
	}

	flow, ok := d.Direction(category)
	if !ok {
		// Unverified business rule: an unknown category on the opening row
		// defaults to outgoing.
		logger.Debug("Category not in vocabulary, defaulting to outgoing",
			logging.Field{Key: logging.FieldCategory, Value: category})
		return dialect.FlowOutgoing
	}
	return flow
}

// buildDescription removes the category token and the consumed monetary
// substrings from the segment text. Amounts are removed right to left so a
// price inside the free text that happens to equal the transaction amount
// survives.
func buildDescription(text, category string, amounts []string) string {
	desc := strings.TrimPrefix(text, category)
	for i := len(amounts) - 1; i >= 0; i-- {
		if idx := strings.LastIndex(desc, amounts[i]); idx >= 0 {
			desc = desc[:idx] + " " + desc[idx+len(amounts[i]):]
		}
	}
	return textutils.CollapseWhitespace(desc)
}
