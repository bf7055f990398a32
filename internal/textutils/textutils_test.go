package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("  a \t b\n\nc  "))
	assert.Equal(t, "", CollapseWhitespace("   \n\t "))
	assert.Equal(t, "unchanged", CollapseWhitespace("unchanged"))
}

func TestExtractISIN(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Irish ETF", input: "Kauf Vanguard FTSE All-World IE00B3RBWM25", expected: "IE00B3RBWM25"},
		{name: "German security", input: "DE0007164600 SAP SE", expected: "DE0007164600"},
		{name: "No ISIN", input: "Einzahlung akzeptiert", expected: ""},
		{name: "Too short", input: "IE00B3RBWM2", expected: ""},
		{name: "Embedded in longer token", input: "XIE00B3RBWM25Y", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractISIN(tt.input))
		})
	}
}
