package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rvaldez/textreport/pkg/output"
	"github.com/rvaldez/textreport/pkg/parser"
)

// NewConvertCommand creates the convertnumbers root command.
func NewConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convertnumbers <inputFile>",
		Short: "Convert integers from a text file to binary and hexadecimal",
		Long: `Read one integer per physical line of the input file and render each as
binary and uppercase hexadecimal, one report row per line in file order.

Negative values use fixed-width two's complement: 10 bits for binary and
10 hex digits. Lines that do not parse keep their text and get ` + output.ValueSentinel + `
cells instead of aborting the run. Results are printed to the console and
written to ` + output.ConvertResultFile + ` in the current directory.

Exit codes:
  0 - Conversions produced
  1 - Missing input file, wrong arguments, or no valid numbers`,
		Args:          cobra.ExactArgs(1),
		RunE:          runConvert,
		Version:       Version,
		SilenceErrors: true,
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
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

	entries, lineErrs := parser.Ints(lines)
	reportLineErrors(lineErrs)

	report := &output.ConvertReport{
		InputFile: path,
		Entries:   entries,
		Invalid:   len(lineErrs),
	}

	if report.ValidCount() == 0 {
		fatal("ERROR: No valid numbers found in the input file.")
		return nil
	}

	report.Elapsed = time.Since(start)

	text := report.Text()
	fmt.Println(text)

	return output.WriteFile(output.ConvertResultFile, text)
}
