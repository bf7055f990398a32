package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/auszug-csv/internal/models"
)

func sampleTransactions() []models.Transaction {
	received := decimal.NewFromInt(100)
	spent := decimal.NewFromInt(50)
	return []models.Transaction{
		{
			Date:        models.NewDate(2021, time.January, 5),
			Category:    "Überweisung",
			Description: "Einzahlung akzeptiert",
			Received:    &received,
			Balance:     decimal.NewFromInt(100),
			Currency:    "EUR",
		},
		{
			Date:        models.NewDate(2021, time.January, 6),
			Category:    "Handel",
			Description: "Kauf Vanguard FTSE All-World IE00B3RBWM25",
			Spent:       &spent,
			Balance:     decimal.NewFromInt(50),
			Currency:    "EUR",
			ISIN:        "IE00B3RBWM25",
		},
	}
}

func TestWriteTransactionsToCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "out.csv")
	require.NoError(t, WriteTransactionsToCSV(sampleTransactions(), out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	content := string(data)

	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Date")
	assert.Contains(t, lines[0], "Balance")
	assert.Contains(t, lines[1], "05.01.2021")
	assert.Contains(t, lines[1], "100")
	assert.Contains(t, lines[2], "IE00B3RBWM25")
}

func TestWriteTransactionsToCSVNil(t *testing.T) {
	err := WriteTransactionsToCSV(nil, filepath.Join(t.TempDir(), "out.csv"))
	assert.Error(t, err)
}

func TestWriteTransactionsToCSVEmpty(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteTransactionsToCSV([]models.Transaction{}, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Date")
}

func TestWriteTransactionsToCSVDelimiter(t *testing.T) {
	SetDelimiter(';')
	defer SetDelimiter(',')

	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteTransactionsToCSV(sampleTransactions(), out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Date;Category")
}

func TestReadCSVRows(t *testing.T) {
	type row struct {
		Date    models.Date `csv:"DATUM"`
		Balance string      `csv:"SALDO"`
	}

	input := "DATUM;SALDO\n05.01.2021;100,00 €\n06.01.2021;50,00 €\n"
	rows, err := ReadCSVRows[row](strings.NewReader(input), ';')
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.NewDate(2021, time.January, 5).Time, rows[0].Date.Time)
	assert.Equal(t, "100,00 €", rows[0].Balance)
}

func TestReadCSVRowsBadInput(t *testing.T) {
	type row struct {
		Date models.Date `csv:"DATUM"`
	}
	_, err := ReadCSVRows[row](strings.NewReader(""), ';')
	assert.Error(t, err)
}
