package statementparser

import (
	"fjacquet/auszug-csv/internal/dialect"
)

// Chapter is a named section of the statement, delimited by the dialect's
// heading vocabulary. Reprinted table headers are kept exactly once.
type Chapter struct {
	Name  string
	Lines []string
}

// segmentChapters partitions the sanitized line stream into chapters with a
// single stateful pass. Everything before the first recognized heading
// belongs to the implicit holder chapter. This is the mechanism that
// tolerates per-page column headers and page-straddling table rows which a
// naive per-page parse would fragment.
func segmentChapters(lines []string, d *dialect.Dialect) []Chapter {
	var chapters []Chapter

	name := d.HolderChapter
	var content []string
	headerSeen := false

	flush := func() {
		if len(content) > 0 {
			chapters = append(chapters, Chapter{Name: name, Lines: content})
		}
	}

	for _, line := range lines {
		switch {
		case d.IsChapterHeading(line):
			flush()
			name = line
			content = nil
			headerSeen = false
		case d.IsTableHeader(line):
			if !headerSeen {
				content = append(content, line)
				headerSeen = true
			}
		default:
			content = append(content, line)
		}
	}
	flush()

	return chapters
}
