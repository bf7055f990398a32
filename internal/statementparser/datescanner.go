package statementparser

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"fjacquet/auszug-csv/internal/dialect"
	"fjacquet/auszug-csv/internal/parsererror"
)

// dateAnchor is a calendar date recognized in the line stream. next is the
// index at which scanning resumes; leftover holds transaction text that
// shared a physical line with the year token.
type dateAnchor struct {
	date     time.Time
	next     int
	leftover string
}

// scanDateAnchor checks whether a calendar date begins at lines[i]. The text
// extractor flattens a date cell into either two lines ("12 Jan." then
// "2024 ...") or three lines ("12" / "Jan." / "2024") depending on page
// geometry, so both layouts are recognized.
//
// The scanner is deliberately conservative: a day-like token that is not part
// of a complete day/month/year shape is ordinary content and yields
// (ok=false) without consuming anything. Only when the shape is complete but
// the month token is not in the dialect's table does it return an
// UnknownMonthError, since guessing a month would corrupt the chronological
// order of every following row.
func scanDateAnchor(lines []string, i int, d *dialect.Dialect) (dateAnchor, bool, error) {
	if i >= len(lines) {
		return dateAnchor{}, false, nil
	}

	tokens := strings.Fields(lines[i])

	// Two-line layout: "day month" followed by a line whose first token is
	// the year. The rest of the year line belongs to the transaction body.
	if len(tokens) == 2 && isDayToken(tokens[0]) && isMonthShaped(tokens[1]) && i+1 < len(lines) {
		nextTokens := strings.Fields(lines[i+1])
		if len(nextTokens) > 0 && isYearToken(nextTokens[0]) {
			month, ok := d.Month(tokens[1])
			if !ok {
				return dateAnchor{}, false, &parsererror.UnknownMonthError{Token: tokens[1], Line: i}
			}
			return dateAnchor{
				date:     buildDate(tokens[0], month, nextTokens[0]),
				next:     i + 2,
				leftover: strings.Join(nextTokens[1:], " "),
			}, true, nil
		}
	}

	// Three-line layout: day, month and year each alone on a line.
	if len(tokens) == 1 && isDayToken(tokens[0]) && i+2 < len(lines) {
		monthTokens := strings.Fields(lines[i+1])
		yearTokens := strings.Fields(lines[i+2])
		if len(monthTokens) == 1 && isMonthShaped(monthTokens[0]) &&
			len(yearTokens) == 1 && isYearToken(yearTokens[0]) {
			month, ok := d.Month(monthTokens[0])
			if !ok {
				return dateAnchor{}, false, &parsererror.UnknownMonthError{Token: monthTokens[0], Line: i + 1}
			}
			return dateAnchor{
				date: buildDate(tokens[0], month, yearTokens[0]),
				next: i + 3,
			}, true, nil
		}
	}

	return dateAnchor{}, false, nil
}

func buildDate(dayToken string, month time.Month, yearToken string) time.Time {
	day, _ := strconv.Atoi(dayToken)
	year, _ := strconv.Atoi(yearToken)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// isDayToken matches one or two digits forming a plausible day of month.
func isDayToken(s string) bool {
	if len(s) < 1 || len(s) > 2 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	day, _ := strconv.Atoi(s)
	return day >= 1 && day <= 31
}

// isMonthShaped matches a short alphabetic token with an optional trailing
// dot, the shape of a month abbreviation in any supported spelling.
func isMonthShaped(s string) bool {
	s = strings.TrimSuffix(s, ".")
	if len(s) < 2 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// isYearToken matches exactly four digits.
func isYearToken(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
