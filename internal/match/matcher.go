// Package match performs case-insensitive multi-keyword scanning over single
// lines of text.
package match

import (
	"fmt"
	"regexp"

	"github.com/SStephenB/pdf-highlight-oa/config"
)

// Match is one keyword occurrence within a line. Start and End are byte
// offsets into the scanned text; Text is the matched substring as it appears
// in the line, which can differ from the keyword in case or, in pattern mode,
// in content.
type Match struct {
	Keyword string
	Start   int
	End     int
	Text    string
}

// Keyword is one compiled search term.
type Keyword struct {
	Text string
	re   *regexp.Regexp
}

// Find returns every occurrence of the keyword in text, left to right.
// Matches of a single keyword never overlap; the scan resumes after each
// match.
func (k Keyword) Find(text string) []Match {
	locs := k.re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	out := make([]Match, 0, len(locs))
	for _, loc := range locs {
		out = append(out, Match{
			Keyword: k.Text,
			Start:   loc[0],
			End:     loc[1],
			Text:    text[loc[0]:loc[1]],
		})
	}
	return out
}

// Matcher holds the compiled keywords of one search call, in input order.
type Matcher struct {
	keywords []Keyword
}

// New compiles the keywords for the given mode. In pattern mode each keyword
// is handed to the regexp engine unescaped, so metacharacters keep their
// pattern meaning; a keyword that fails to compile makes the whole call fail.
// In literal mode keywords are quoted first and always compile.
func New(keywords []string, mode config.MatchMode) (*Matcher, error) {
	compiled := make([]Keyword, 0, len(keywords))
	for _, kw := range keywords {
		expr := kw
		if mode == config.MatchModeLiteral {
			expr = regexp.QuoteMeta(kw)
		}
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			return nil, fmt.Errorf("compiling keyword %q: %w", kw, err)
		}
		compiled = append(compiled, Keyword{Text: kw, re: re})
	}
	return &Matcher{keywords: compiled}, nil
}

// Keywords returns the compiled keywords in input order.
func (m *Matcher) Keywords() []Keyword {
	return m.keywords
}

// FindAll scans text with every keyword independently and returns all matches
// in keyword input order, left to right within each keyword. Matches from
// different keywords may overlap; all are retained.
func (m *Matcher) FindAll(text string) []Match {
	var out []Match
	for _, kw := range m.keywords {
		out = append(out, kw.Find(text)...)
	}
	return out
}
