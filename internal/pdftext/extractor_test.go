package pdftext

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFExtractorMissingFile(t *testing.T) {
	_, err := New().ExtractPages(filepath.Join(t.TempDir(), "nope.pdf"))
	assert.Error(t, err)
}

func TestStaticExtractor(t *testing.T) {
	static := &StaticExtractor{Pages: []string{"eins", "zwei"}}
	pages, err := static.ExtractPages("ignored.pdf")
	require.NoError(t, err)
	assert.Equal(t, []string{"eins", "zwei"}, pages)

	static = &StaticExtractor{Err: errors.New("kaputt")}
	_, err = static.ExtractPages("ignored.pdf")
	assert.Error(t, err)
}
