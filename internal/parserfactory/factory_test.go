package parserfactory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/auszug-csv/internal/csvreader"
	"fjacquet/auszug-csv/internal/dialect"
	"fjacquet/auszug-csv/internal/logging"
	"fjacquet/auszug-csv/internal/statementparser"
)

func TestGetParser(t *testing.T) {
	d := dialect.Default()
	require.NoError(t, d.Compile())
	logger := &logging.MockLogger{}

	p, err := GetParser(Statement, d, logger)
	require.NoError(t, err)
	assert.IsType(t, &statementparser.Adapter{}, p)

	p, err = GetParser(CSVExport, d, logger)
	require.NoError(t, err)
	assert.IsType(t, &csvreader.Adapter{}, p)

	_, err = GetParser("xml", d, logger)
	assert.Error(t, err)
}
