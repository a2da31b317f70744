package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rvaldez/textreport/pkg/baseconv"
)

// Text renders the statistics report. The layout is fixed; the same text
// goes to the console and to StatsResultFile.
func (r *StatsReport) Text() string {
	mode := NoModeSentinel
	if r.Summary.HasMode {
		mode = formatFloat(r.Summary.Mode)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Compute Statistics - Results\n")
	fmt.Fprintf(&b, "----------------------------\n")
	fmt.Fprintf(&b, "Input file: %s\n", r.InputFile)
	fmt.Fprintf(&b, "Valid numbers: %d\n", r.Valid)
	fmt.Fprintf(&b, "Invalid lines: %d\n", r.Invalid)
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "Descriptive Statistics (population):\n")
	fmt.Fprintf(&b, "Mean: %s\n", formatFloat(r.Summary.Mean))
	fmt.Fprintf(&b, "Median: %s\n", formatFloat(r.Summary.Median))
	fmt.Fprintf(&b, "Mode: %s\n", mode)
	fmt.Fprintf(&b, "Variance: %s\n", formatFloat(r.Summary.Variance))
	fmt.Fprintf(&b, "Standard deviation: %s\n", formatFloat(r.Summary.StdDev))
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "Elapsed time (s): %s\n", formatSeconds(r.Elapsed))
	return b.String()
}

// Text renders the conversion report: a header, then one
// "number | binary | hex" row per input line in file order. Lines that
// did not parse keep their raw text and get sentinel cells.
func (r *ConvertReport) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Convert Numbers - Results\n")
	fmt.Fprintf(&b, "-------------------------\n")
	fmt.Fprintf(&b, "Input file: %s\n", r.InputFile)
	fmt.Fprintf(&b, "Valid numbers: %d\n", r.ValidCount())
	fmt.Fprintf(&b, "Invalid lines: %d\n", r.Invalid)
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "Number | Binary | Hex\n")
	fmt.Fprintf(&b, "---------------------\n")

	for _, e := range r.Entries {
		if !e.Valid {
			fmt.Fprintf(&b, "%s | %s | %s\n", e.Raw, ValueSentinel, ValueSentinel)
			continue
		}
		fmt.Fprintf(&b, "%d | %s | %s\n", e.Value, baseconv.ToBinary(e.Value), baseconv.ToHex(e.Value))
	}

	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "Elapsed time (s): %s\n", formatSeconds(r.Elapsed))
	return b.String()
}

// Text renders the word-count report as tab-separated rows in first-seen
// order, closed by a grand total and the elapsed trailer.
func (r *WordCountReport) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Row Labels\tCount of %s\n", fileTag(r.InputFile))

	for _, entry := range r.Words.Entries() {
		fmt.Fprintf(&b, "%s\t%d\n", entry.Word, entry.Count)
	}

	fmt.Fprintf(&b, "Grand Total\t%d\n", r.Words.Total())
	fmt.Fprintf(&b, "Elapsed time (s): %s\n", formatSeconds(r.Elapsed))
	return b.String()
}

// fileTag is the input file's base name without its extension, used in
// the word-count header row.
func fileTag(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
