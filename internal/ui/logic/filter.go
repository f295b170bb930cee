package logic

import (
	"regexp"
	"strings"

	"starseek/internal/domain"
)

// Pattern is a compiled search query.
// Queries are case-insensitive regular expressions; a query that does not
// compile is matched as a literal substring instead.
type Pattern struct {
	query   string
	re      *regexp.Regexp
	literal string // lowercased query, used when re is nil
	err     error  // compile error that caused the literal fallback
}

// CompilePattern compiles query. It never fails.
func CompilePattern(query string) Pattern {
	p := Pattern{query: query}
	re, err := regexp.Compile("(?i)" + query)
	if err != nil {
		p.literal = strings.ToLower(query)
		p.err = err
		return p
	}
	p.re = re
	return p
}

// Query returns the source query
func (p Pattern) Query() string {
	return p.query
}

// IsLiteral reports whether the query fell back to substring matching
func (p Pattern) IsLiteral() bool {
	return p.re == nil
}

// Err returns the compile error behind a literal fallback, if any
func (p Pattern) Err() error {
	return p.err
}

// MatchString tests a single field
func (p Pattern) MatchString(s string) bool {
	if p.re != nil {
		return p.re.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), p.literal)
}

// Locate returns the byte range of the first match in s, for highlighting.
// Empty matches are not reported.
func (p Pattern) Locate(s string) (int, int, bool) {
	if p.re != nil {
		loc := p.re.FindStringIndex(s)
		if loc == nil || loc[0] == loc[1] {
			return 0, 0, false
		}
		return loc[0], loc[1], true
	}
	lower := strings.ToLower(s)
	if p.literal == "" || len(lower) != len(s) {
		return 0, 0, false
	}
	i := strings.Index(lower, p.literal)
	if i < 0 {
		return 0, 0, false
	}
	return i, i + len(p.literal), true
}

// Matches checks the record's primary name OR secondary key
func (p Pattern) Matches(record *domain.Record) bool {
	if record == nil {
		return false
	}
	return p.MatchString(record.PrimaryName) || p.MatchString(record.SecondaryKey)
}

// Matches is the one-shot form of CompilePattern(query).Matches(record)
func Matches(query string, record *domain.Record) bool {
	return CompilePattern(query).Matches(record)
}
