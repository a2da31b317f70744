// Package parser provides line reading and per-line value parsing for the
// report utilities.
package parser

import "fmt"

// Line is a single physical line from an input file.
type Line struct {
	// Num is the 1-based line number in the source file.
	Num int

	// Text is the line content with the trailing newline stripped.
	// Surrounding whitespace is preserved; trimming is a parsing concern.
	Text string
}

// LineError records a recoverable per-line problem. The line itself is
// excluded from computation but the run continues.
type LineError struct {
	// Num is the 1-based line number the problem occurred on.
	Num int

	// Reason describes the problem, e.g. "empty line (skipped)".
	Reason string
}

// String renders the error the way it appears on the console.
func (e LineError) String() string {
	return fmt.Sprintf("Line %d: %s", e.Num, e.Reason)
}

// IntEntry is the per-line outcome of integer parsing. Every input line
// produces exactly one entry, valid or not, so the converter can emit one
// report row per line in file order.
type IntEntry struct {
	// Num is the 1-based line number.
	Num int

	// Raw is the trimmed original text of the line.
	Raw string

	// Value is the parsed integer. Only meaningful when Valid is true.
	Value int64

	// Valid reports whether the line parsed as an integer.
	Valid bool
}
