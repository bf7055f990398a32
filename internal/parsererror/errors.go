// Package parsererror defines the typed errors returned by the parsers.
package parsererror

import "fmt"

// ParseError represents an error during parsing.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected format for a specific parser.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// DataExtractionError represents an error where specific required data could
// not be extracted from a file, even if the file format itself is valid.
type DataExtractionError struct {
	FilePath  string
	FieldName string
	Reason    string
}

func (e *DataExtractionError) Error() string {
	return fmt.Sprintf("data extraction failed in file '%s' for field '%s': %s",
		e.FilePath, e.FieldName, e.Reason)
}

// UnknownMonthError is returned when a line group has the shape of a calendar
// date but its month token is not in the dialect's month table. A wrong date
// would silently corrupt the chronological ordering and every following
// balance check, so recognition aborts for the current chapter instead of
// guessing.
type UnknownMonthError struct {
	Token string
	Line  int
}

func (e *UnknownMonthError) Error() string {
	return fmt.Sprintf("unknown month name '%s' at line %d", e.Token, e.Line)
}
