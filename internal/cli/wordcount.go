package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rvaldez/textreport/pkg/output"
	"github.com/rvaldez/textreport/pkg/parser"
	"github.com/rvaldez/textreport/pkg/wordcount"
)

// NewWordCountCommand creates the wordcount root command.
func NewWordCountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "wordcount <inputFile>",
		Short: "Count distinct words and their frequency from a text file",
		Long: `Split each line of the input file on single spaces, reduce every token
to its lowercased alphanumeric characters, and count occurrences of each
distinct word in first-seen order. Tokens that reduce to nothing count as
` + wordcount.Blank + ` entries.

Empty lines are reported and skipped. Results are printed to the console
and written to ` + output.WordCountResultFile + ` in the current directory.

Exit codes:
  0 - Word counts produced
  1 - Missing input file, wrong arguments, or no words found`,
		Args:          cobra.ExactArgs(1),
		RunE:          runWordCount,
		Version:       Version,
		SilenceErrors: true,
	}
}

func runWordCount(cmd *cobra.Command, args []string) error {
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

	words, lineErrs := wordcount.Split(lines)
	reportLineErrors(lineErrs)

	if len(words) == 0 {
		fatal("ERROR: No words found in the input file.")
		return nil
	}

	report := &output.WordCountReport{
		InputFile: path,
		Words:     wordcount.Tally(words),
		Elapsed:   time.Since(start),
	}

	text := report.Text()
	fmt.Println(text)

	return output.WriteFile(output.WordCountResultFile, text)
}
