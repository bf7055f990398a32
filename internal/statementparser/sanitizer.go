package statementparser

import (
	"strings"

	"fjacquet/auszug-csv/internal/dialect"
)

// sanitizePage splits one page's raw text into trimmed, non-empty lines with
// the dialect's boilerplate removed. Pure function of its input; applying it
// to already-sanitized lines yields the same result.
func sanitizePage(page string, d *dialect.Dialect) []string {
	var lines []string
	for _, raw := range strings.Split(page, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if d.IsBoilerplate(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// sanitizePages applies sanitizePage to every page independently and returns
// the pages flattened into one ordered line stream. Page boundaries carry no
// meaning beyond ordering: a chapter or a transaction row may straddle them.
func sanitizePages(pages []string, d *dialect.Dialect) []string {
	var lines []string
	for _, page := range pages {
		lines = append(lines, sanitizePage(page, d)...)
	}
	return lines
}
