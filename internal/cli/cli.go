// Package cli provides the command-line interface for the three report
// utilities. Each utility is its own binary with a single root command.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rvaldez/textreport/pkg/parser"
)

// Version is set via ldflags at build time.
var Version = "dev"

// ExitCode is set by commands to indicate the result of a run. Fatal
// conditions (missing input, no valid entries) set it to 1 without
// returning an error, so the original console messages stay intact.
var ExitCode = 0

// Run executes the command and returns the process exit code.
func Run(cmd *cobra.Command) int {
	ExitCode = 0
	if err := cmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return ExitCode
}

// fatal reports a fatal condition on the console and marks the run as
// failed. No report file is written for fatal conditions.
func fatal(msg string) {
	fmt.Println(msg)
	ExitCode = 1
}

// reportLineErrors echoes recoverable per-line problems to the console
// as the run proceeds.
func reportLineErrors(errs []parser.LineError) {
	for _, e := range errs {
		fmt.Printf("ERROR: %s\n", e)
	}
}
