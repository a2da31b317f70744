package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Floats parses each line as a floating-point number after trimming
// surrounding whitespace. Blank lines and lines that fail to parse are
// recorded as LineErrors and excluded from the returned values. Order is
// preserved in both slices.
func Floats(lines []Line) ([]float64, []LineError) {
	var values []float64
	var errs []LineError

	for _, line := range lines {
		text := strings.TrimSpace(line.Text)

		if text == "" {
			errs = append(errs, LineError{Num: line.Num, Reason: "empty line (skipped)"})
			continue
		}

		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			errs = append(errs, LineError{
				Num:    line.Num,
				Reason: fmt.Sprintf("invalid number '%s' (skipped)", text),
			})
			continue
		}

		values = append(values, v)
	}

	return values, errs
}

// Ints parses each line as a signed 64-bit integer after trimming
// surrounding whitespace. Unlike Floats, every line yields an entry:
// blank lines and unparseable lines produce an invalid entry carrying the
// trimmed raw text, so downstream rendering stays one row per input line.
func Ints(lines []Line) ([]IntEntry, []LineError) {
	var entries []IntEntry
	var errs []LineError

	for _, line := range lines {
		text := strings.TrimSpace(line.Text)

		if text == "" {
			errs = append(errs, LineError{Num: line.Num, Reason: "empty line (skipped)"})
			entries = append(entries, IntEntry{Num: line.Num, Raw: text})
			continue
		}

		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			errs = append(errs, LineError{
				Num:    line.Num,
				Reason: fmt.Sprintf("invalid number '%s' (skipped)", text),
			})
			entries = append(entries, IntEntry{Num: line.Num, Raw: text})
			continue
		}

		entries = append(entries, IntEntry{Num: line.Num, Raw: text, Value: v, Valid: true})
	}

	return entries, errs
}
