package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("bad number")
	err := &ParseError{Parser: "csv", Field: "SALDO", Value: "abc", Err: cause}

	assert.Equal(t, "csv: failed to parse SALDO='abc': bad number", err.Error())
	assert.True(t, errors.Is(err, cause))

	var parseErr *ParseError
	require.True(t, errors.As(error(err), &parseErr))
	assert.Equal(t, "SALDO", parseErr.Field)
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{
		FilePath:       "in.pdf",
		ExpectedFormat: "PDF account statement",
		Msg:            "no pages",
	}
	assert.Equal(t,
		"invalid format in file 'in.pdf': no pages. Expected: PDF account statement",
		err.Error())
}

func TestDataExtractionError(t *testing.T) {
	err := &DataExtractionError{FilePath: "in.csv", FieldName: "DATUM", Reason: "empty"}
	assert.Contains(t, err.Error(), "in.csv")
	assert.Contains(t, err.Error(), "DATUM")
}

func TestUnknownMonthError(t *testing.T) {
	err := &UnknownMonthError{Token: "Xyz.", Line: 7}
	assert.Equal(t, "unknown month name 'Xyz.' at line 7", err.Error())

	var unknownMonth *UnknownMonthError
	assert.True(t, errors.As(error(err), &unknownMonth))
}
