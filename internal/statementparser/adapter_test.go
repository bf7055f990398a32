package statementparser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/auszug-csv/internal/logging"
	"fjacquet/auszug-csv/internal/parsererror"
	"fjacquet/auszug-csv/internal/pdftext"
)

func TestAdapterParseFile(t *testing.T) {
	d := testDialect(t)
	extractor := &pdftext.StaticExtractor{Pages: testPages}

	adapter := NewAdapter(d, extractor, &logging.MockLogger{})
	txs, err := adapter.ParseFile("statement.pdf")
	require.NoError(t, err)
	assert.Len(t, txs, 4)
}

func TestAdapterParseFileExtractionFailure(t *testing.T) {
	d := testDialect(t)
	extractor := &pdftext.StaticExtractor{Err: errors.New("not a pdf")}

	adapter := NewAdapter(d, extractor, &logging.MockLogger{})
	_, err := adapter.ParseFile("broken.pdf")
	require.Error(t, err)

	var invalidFormat *parsererror.InvalidFormatError
	assert.True(t, errors.As(err, &invalidFormat))
}

func TestAdapterValidateFormat(t *testing.T) {
	d := testDialect(t)

	adapter := NewAdapter(d, &pdftext.StaticExtractor{Pages: testPages}, &logging.MockLogger{})
	ok, err := adapter.ValidateFormat("statement.pdf")
	require.NoError(t, err)
	assert.True(t, ok)

	adapter = NewAdapter(d, &pdftext.StaticExtractor{Pages: []string{"nur Freitext"}}, &logging.MockLogger{})
	ok, err = adapter.ValidateFormat("other.pdf")
	require.NoError(t, err)
	assert.False(t, ok)

	adapter = NewAdapter(d, &pdftext.StaticExtractor{Err: errors.New("not a pdf")}, &logging.MockLogger{})
	ok, err = adapter.ValidateFormat("broken.pdf")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdapterConvertToCSV(t *testing.T) {
	d := testDialect(t)
	out := filepath.Join(t.TempDir(), "out.csv")

	adapter := NewAdapter(d, &pdftext.StaticExtractor{Pages: testPages}, &logging.MockLogger{})
	require.NoError(t, adapter.ConvertToCSV("statement.pdf", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Date")
	assert.Contains(t, content, "Überweisung")
	assert.Contains(t, content, "IE00B3RBWM25")
}

func TestAdapterConvertToCSVPartial(t *testing.T) {
	d := testDialect(t)
	out := filepath.Join(t.TempDir(), "out.csv")
	mock := &logging.MockLogger{}

	pages := []string{
		"KONTOTRANSAKTIONEN\n" +
			"01 Jan.\n" +
			"2021 Überweisung Einzahlung 100,00 € 100,00 €\n" +
			"02 Xyz.\n" +
			"2021 Handel Kauf 50,00 € 50,00 €\n",
	}
	adapter := NewAdapter(d, &pdftext.StaticExtractor{Pages: pages}, mock)

	require.NoError(t, adapter.ConvertToCSV("statement.pdf", out))
	assert.True(t, mock.HasMessage("Writing partial results after chapter failure"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Einzahlung")
}
