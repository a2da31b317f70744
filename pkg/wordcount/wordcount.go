// Package wordcount tokenizes lines into normalized words and tallies
// their frequency in first-seen order.
package wordcount

import (
	"strings"
	"unicode"

	"github.com/rvaldez/textreport/pkg/parser"
)

// Blank is the sentinel recorded for tokens that normalize to the empty
// string, including the empty tokens produced by consecutive spaces.
const Blank = "(blank)"

// Normalize keeps only alphanumeric characters of the token, lowercased.
func Normalize(token string) string {
	var b strings.Builder
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Split tokenizes the given lines into normalized words in file order.
// Each line is split on single ASCII spaces, so runs of spaces yield
// empty tokens that count as Blank entries. Lines that are empty after
// trimming are skipped with a recorded LineError instead of contributing
// a blank token.
func Split(lines []parser.Line) ([]string, []parser.LineError) {
	var words []string
	var errs []parser.LineError

	for _, line := range lines {
		if strings.TrimSpace(line.Text) == "" {
			errs = append(errs, parser.LineError{Num: line.Num, Reason: "empty line (skipped)"})
			continue
		}

		for _, token := range strings.Split(line.Text, " ") {
			normalized := Normalize(token)
			if normalized == "" {
				words = append(words, Blank)
			} else {
				words = append(words, normalized)
			}
		}
	}

	return words, errs
}
