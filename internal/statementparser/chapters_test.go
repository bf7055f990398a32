package statementparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentChapters(t *testing.T) {
	d := testDialect(t)

	lines := []string{
		"Max Mustermann",
		"Musterweg 1",
		"KONTOÜBERSICHT",
		"Eröffnungssaldo 0,00 €",
		"KONTOTRANSAKTIONEN",
		"DATUM TYP BESCHREIBUNG ZAHLUNGSEINGANG ZAHLUNGSAUSGANG SALDO",
		"01 Jan.",
		"DATUM TYP BESCHREIBUNG ZAHLUNGSEINGANG ZAHLUNGSAUSGANG SALDO",
		"2021 Überweisung Einzahlung 100,00 € 100,00 €",
	}

	chapters := segmentChapters(lines, d)
	require.Len(t, chapters, 3)

	assert.Equal(t, "KONTOINHABER", chapters[0].Name)
	assert.Equal(t, []string{"Max Mustermann", "Musterweg 1"}, chapters[0].Lines)

	assert.Equal(t, "KONTOÜBERSICHT", chapters[1].Name)

	// The reprinted column header is kept exactly once.
	assert.Equal(t, "KONTOTRANSAKTIONEN", chapters[2].Name)
	assert.Equal(t, []string{
		"DATUM TYP BESCHREIBUNG ZAHLUNGSEINGANG ZAHLUNGSAUSGANG SALDO",
		"01 Jan.",
		"2021 Überweisung Einzahlung 100,00 € 100,00 €",
	}, chapters[2].Lines)
}

func TestSegmentChaptersNoHolderContent(t *testing.T) {
	d := testDialect(t)

	chapters := segmentChapters([]string{"KONTOTRANSAKTIONEN", "01 Jan."}, d)
	require.Len(t, chapters, 1)
	assert.Equal(t, "KONTOTRANSAKTIONEN", chapters[0].Name)
}

func TestSegmentChaptersEmptyChapterDropped(t *testing.T) {
	d := testDialect(t)

	chapters := segmentChapters([]string{"CASH-KONTO", "HINWEISE", "Hinweistext"}, d)
	require.Len(t, chapters, 1)
	assert.Equal(t, "HINWEISE", chapters[0].Name)
}

func TestSegmentChaptersHeaderResetPerChapter(t *testing.T) {
	d := testDialect(t)
	header := "DATUM TYP BESCHREIBUNG ZAHLUNGSEINGANG ZAHLUNGSAUSGANG SALDO"

	lines := []string{
		"KONTOTRANSAKTIONEN", header, "a",
		"GELDMARKTFONDS-TRANSAKTIONEN", header, "b",
	}

	chapters := segmentChapters(lines, d)
	require.Len(t, chapters, 2)
	assert.Equal(t, []string{header, "a"}, chapters[0].Lines)
	assert.Equal(t, []string{header, "b"}, chapters[1].Lines)
}
