// Package output assembles the textual reports and writes them to the
// fixed-name result files.
package output

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rvaldez/textreport/pkg/parser"
	"github.com/rvaldez/textreport/pkg/stats"
	"github.com/rvaldez/textreport/pkg/wordcount"
)

// Fixed result file names, written to the current working directory and
// overwritten on each run. ConvertResultFile keeps its historical
// spelling; downstream consumers match on the exact name.
const (
	StatsResultFile     = "StatisticsResults.txt"
	ConvertResultFile   = "ConvertionResults.txt"
	WordCountResultFile = "WordCountResults.txt"
)

// ValueSentinel is emitted in place of binary/hex cells for lines that
// did not parse as an integer.
const ValueSentinel = "#VALUE!"

// NoModeSentinel is shown as the mode when every value occurs once.
const NoModeSentinel = "#N/A"

// StatsReport is the complete output of a statistics run.
type StatsReport struct {
	// InputFile is the path as given on the command line.
	InputFile string

	// Valid and Invalid are the counts of parsed samples and of
	// recoverable line errors.
	Valid   int
	Invalid int

	// Summary holds the computed statistics.
	Summary stats.Summary

	// Elapsed is the wall-clock duration of the run up to report assembly.
	Elapsed time.Duration
}

// ConvertReport is the complete output of a conversion run.
type ConvertReport struct {
	InputFile string

	// Entries holds one entry per input line, in file order, valid or not.
	Entries []parser.IntEntry

	// Invalid is the count of recoverable line errors.
	Invalid int

	Elapsed time.Duration
}

// ValidCount returns the number of entries that parsed as integers.
func (r *ConvertReport) ValidCount() int {
	n := 0
	for _, e := range r.Entries {
		if e.Valid {
			n++
		}
	}
	return n
}

// WordCountReport is the complete output of a word-count run.
type WordCountReport struct {
	InputFile string

	// Words holds the frequency table in first-seen order.
	Words *wordcount.Table

	Elapsed time.Duration
}

// formatFloat renders v as the shortest decimal that round-trips, with
// ".0" appended to integral values so whole-number results still read as
// floating point (median 2 renders as "2.0").
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(v, 0) && !math.IsNaN(v) {
		s += ".0"
	}
	return s
}

// formatSeconds renders a duration as fractional seconds for the elapsed
// time trailer.
func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'g', -1, 64)
}
