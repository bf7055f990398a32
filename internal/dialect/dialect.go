// Package dialect holds the closed vocabularies of one statement dialect:
// boilerplate lines, footer patterns, chapter headings, table headers, the
// month-name table, the category partition and the monetary pattern. The
// parser engine contains no dialect-specific strings of its own, so porting
// the tool to another bank's statement layout is a configuration change.
package dialect

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Flow is the direction of a transaction's cash movement.
type Flow int

const (
	// FlowOutgoing marks money leaving the account.
	FlowOutgoing Flow = iota
	// FlowIncoming marks money entering the account.
	FlowIncoming
)

// String returns a human-readable direction name for logging.
func (f Flow) String() string {
	if f == FlowIncoming {
		return "incoming"
	}
	return "outgoing"
}

// Dialect describes one statement layout. The exported fields are the
// YAML-overridable configuration; Compile derives the lookup structures.
type Dialect struct {
	// HolderChapter names the implicit chapter open before the first
	// recognized heading line.
	HolderChapter string `yaml:"holder_chapter"`

	// ChapterHeadings is the closed set of heading lines that open a chapter.
	ChapterHeadings []string `yaml:"chapter_headings"`

	// LedgerChapters names the chapters holding transaction tables.
	LedgerChapters []string `yaml:"ledger_chapters"`

	// TableHeaders is the closed set of column-header lines reprinted on
	// every statement page.
	TableHeaders []string `yaml:"table_headers"`

	// BoilerplateLines are letterhead and legal-footer lines removed by
	// exact match.
	BoilerplateLines []string `yaml:"boilerplate_lines"`

	// FooterPatterns are regular expressions matching machine-generated
	// footer lines (generation timestamp, pagination).
	FooterPatterns []string `yaml:"footer_patterns"`

	// Months maps accepted month spellings (stored without trailing dot,
	// lower case) to month numbers 1-12.
	Months map[string]int `yaml:"months"`

	// IncomingCategories and OutgoingCategories partition the category
	// vocabulary for direction fallback when no prior balance exists.
	IncomingCategories []string `yaml:"incoming_categories"`
	OutgoingCategories []string `yaml:"outgoing_categories"`

	// AmountPattern matches one monetary substring including the currency mark.
	AmountPattern string `yaml:"amount_pattern"`

	// Currency is the ISO code stamped on extracted transactions.
	Currency string `yaml:"currency"`

	// BalanceEpsilon is the tolerance for the balance-continuity check,
	// as a decimal string.
	BalanceEpsilon string `yaml:"balance_epsilon"`

	boilerplate map[string]struct{}
	headings    map[string]struct{}
	ledgers     map[string]struct{}
	headers     map[string]struct{}
	months      map[string]time.Month
	directions  map[string]Flow
	categories  []string
	footerRes   []*regexp.Regexp
	amountRe    *regexp.Regexp
	epsilon     decimal.Decimal
}

// Load reads a YAML dialect file over the built-in defaults and compiles the
// result. An empty path returns the compiled defaults.
func Load(path string) (*Dialect, error) {
	d := Default()
	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- path comes from user flags
		if err != nil {
			return nil, fmt.Errorf("error reading dialect file: %w", err)
		}
		if err := yaml.Unmarshal(data, d); err != nil {
			return nil, fmt.Errorf("error parsing dialect file %s: %w", path, err)
		}
	}
	if err := d.Compile(); err != nil {
		return nil, err
	}
	return d, nil
}

// Compile validates the configuration and builds the derived lookup tables.
// It must be called before the dialect is handed to a parser.
func (d *Dialect) Compile() error {
	if len(d.ChapterHeadings) == 0 {
		return fmt.Errorf("dialect has no chapter headings")
	}
	if len(d.Months) == 0 {
		return fmt.Errorf("dialect has no month table")
	}
	if d.AmountPattern == "" {
		return fmt.Errorf("dialect has no amount pattern")
	}

	re, err := regexp.Compile(d.AmountPattern)
	if err != nil {
		return fmt.Errorf("invalid amount pattern %q: %w", d.AmountPattern, err)
	}
	d.amountRe = re

	d.footerRes = d.footerRes[:0]
	for _, p := range d.FooterPatterns {
		fre, err := regexp.Compile(p)
		if err != nil {
			return fmt.Errorf("invalid footer pattern %q: %w", p, err)
		}
		d.footerRes = append(d.footerRes, fre)
	}

	eps := d.BalanceEpsilon
	if eps == "" {
		eps = "0.01"
	}
	d.epsilon, err = decimal.NewFromString(eps)
	if err != nil {
		return fmt.Errorf("invalid balance epsilon %q: %w", d.BalanceEpsilon, err)
	}

	d.boilerplate = toSet(d.BoilerplateLines)
	d.headings = toSet(d.ChapterHeadings)
	d.ledgers = toSet(d.LedgerChapters)
	d.headers = toSet(d.TableHeaders)

	d.months = make(map[string]time.Month, len(d.Months))
	for name, num := range d.Months {
		if num < 1 || num > 12 {
			return fmt.Errorf("month %q maps to invalid number %d", name, num)
		}
		d.months[strings.ToLower(strings.TrimSuffix(name, "."))] = time.Month(num)
	}

	d.directions = make(map[string]Flow, len(d.IncomingCategories)+len(d.OutgoingCategories))
	for _, c := range d.IncomingCategories {
		d.directions[c] = FlowIncoming
	}
	for _, c := range d.OutgoingCategories {
		d.directions[c] = FlowOutgoing
	}

	// Longest-first so that a category which is a prefix of another
	// ("Handel" vs "Handelsgebühr") never shadows the longer entry.
	d.categories = make([]string, 0, len(d.directions))
	for c := range d.directions {
		d.categories = append(d.categories, c)
	}
	sort.Slice(d.categories, func(i, j int) bool {
		if len(d.categories[i]) != len(d.categories[j]) {
			return len(d.categories[i]) > len(d.categories[j])
		}
		return d.categories[i] < d.categories[j]
	})

	return nil
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// IsBoilerplate reports whether a trimmed line matches the letterhead or
// legal-footer vocabulary.
func (d *Dialect) IsBoilerplate(line string) bool {
	if _, ok := d.boilerplate[line]; ok {
		return true
	}
	for _, re := range d.footerRes {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// IsChapterHeading reports whether a line opens a new chapter.
func (d *Dialect) IsChapterHeading(line string) bool {
	_, ok := d.headings[line]
	return ok
}

// IsLedgerChapter reports whether the named chapter holds a transaction table.
func (d *Dialect) IsLedgerChapter(name string) bool {
	_, ok := d.ledgers[name]
	return ok
}

// IsTableHeader reports whether a line is a reprinted column header.
func (d *Dialect) IsTableHeader(line string) bool {
	_, ok := d.headers[line]
	return ok
}

// Month resolves a month token (with or without trailing dot, any case) to
// its calendar month.
func (d *Dialect) Month(token string) (time.Month, bool) {
	m, ok := d.months[strings.ToLower(strings.TrimSuffix(token, "."))]
	return m, ok
}

// Categories returns the category vocabulary, longest entry first.
func (d *Dialect) Categories() []string {
	return d.categories
}

// Direction returns the default flow direction for a category and whether
// the category is part of the vocabulary at all.
func (d *Dialect) Direction(category string) (Flow, bool) {
	f, ok := d.directions[category]
	return f, ok
}

// AmountRegexp returns the compiled monetary-substring pattern.
func (d *Dialect) AmountRegexp() *regexp.Regexp {
	return d.amountRe
}

// Epsilon returns the balance-continuity tolerance.
func (d *Dialect) Epsilon() decimal.Decimal {
	return d.epsilon
}
