// Package models provides the data structures used throughout the application.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one ledger row recovered from an account statement.
// Received and Spent are mutually exclusive: at most one is set, the other is
// nil. A nil amount means "absent", never zero.
type Transaction struct {
	Date        Date             `csv:"Date" json:"date"`
	Category    string           `csv:"Category" json:"category"`
	Description string           `csv:"Description" json:"description"`
	Received    *decimal.Decimal `csv:"Received" json:"received,omitempty"`
	Spent       *decimal.Decimal `csv:"Spent" json:"spent,omitempty"`
	Balance     decimal.Decimal  `csv:"Balance" json:"balance"`
	Currency    string           `csv:"Currency" json:"currency"`
	ISIN        string           `csv:"ISIN" json:"isin,omitempty"`
	Symbol      string           `csv:"Symbol" json:"symbol,omitempty"`
}

// Date wraps time.Time so transactions marshal to the DD.MM.YYYY format used
// in the output CSV.
type Date struct {
	time.Time
}

// DateLayout is the date format used in CSV output and the broker's CSV export.
const DateLayout = "02.01.2006"

// NewDate builds a Date from calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalCSV implements gocsv marshalling.
func (d Date) MarshalCSV() (string, error) {
	if d.IsZero() {
		return "", nil
	}
	return d.Format(DateLayout), nil
}

// UnmarshalCSV implements gocsv unmarshalling.
func (d *Date) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Amount returns the signed cash-flow delta of the transaction: positive for
// received money, negative for spent money, zero when neither is present.
func (t *Transaction) Amount() decimal.Decimal {
	if t.Received != nil {
		return *t.Received
	}
	if t.Spent != nil {
		return t.Spent.Neg()
	}
	return decimal.Zero
}

// IsCredit returns true if the transaction carries an inflow amount.
func (t *Transaction) IsCredit() bool {
	return t.Received != nil
}

// IsDebit returns true if the transaction carries an outflow amount.
func (t *Transaction) IsDebit() bool {
	return t.Spent != nil
}

// SetReceived populates the inflow amount and clears the outflow.
func (t *Transaction) SetReceived(amount decimal.Decimal) {
	a := amount.Abs()
	t.Received = &a
	t.Spent = nil
}

// SetSpent populates the outflow amount and clears the inflow.
func (t *Transaction) SetSpent(amount decimal.Decimal) {
	a := amount.Abs()
	t.Spent = &a
	t.Received = nil
}
