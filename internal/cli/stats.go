package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rvaldez/textreport/pkg/output"
	"github.com/rvaldez/textreport/pkg/parser"
	"github.com/rvaldez/textreport/pkg/stats"
)

// NewStatsCommand creates the computestats root command.
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "computestats <inputFile>",
		Short: "Compute descriptive statistics from a text file",
		Long: `Read one numeric value per physical line of the input file and compute
mean, median, mode, variance, and standard deviation.

Empty lines and values that fail to parse are reported and skipped; the
remaining values feed the computation. Results are printed to the console
and written to ` + output.StatsResultFile + ` in the current directory.

Exit codes:
  0 - Statistics computed
  1 - Missing input file, wrong arguments, or no valid numbers`,
		Args:          cobra.ExactArgs(1),
		RunE:          runStats,
		Version:       Version,
		SilenceErrors: true,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	start := time.Now()
	path := args[0]

	lines, err := parser.ReadLines(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fatal(fmt.Sprintf("ERROR: File not found: %s", path))
			return nil
		}
		return err
	}

	values, lineErrs := parser.Floats(lines)
	reportLineErrors(lineErrs)

	if len(values) == 0 {
		fatal("ERROR: No valid numbers found in the input file.")
		return nil
	}

	report := &output.StatsReport{
		InputFile: path,
		Valid:     len(values),
		Invalid:   len(lineErrs),
		Summary:   stats.Describe(values),
		Elapsed:   time.Since(start),
	}

	text := report.Text()
	fmt.Println(text)

	return output.WriteFile(output.StatsResultFile, text)
}
