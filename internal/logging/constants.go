package logging

// Standardized field names for structured logging.
// These constants keep log output consistent so that diagnostics emitted by
// the statement engine can be filtered reliably.
const (
	FieldFile       = "file_path"
	FieldParser     = "parser"
	FieldChapter    = "chapter"
	FieldCategory   = "category"
	FieldDate       = "date"
	FieldSegment    = "segment"
	FieldExpected   = "expected_balance"
	FieldActual     = "actual_balance"
	FieldAmount     = "amount"
	FieldCount      = "count"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldISIN       = "isin"
	FieldSymbol     = "symbol"
)
