// computestats reads one numeric value per line from a text file and
// reports mean, median, mode, variance, and standard deviation.
package main

import (
	"os"

	"github.com/rvaldez/textreport/internal/cli"
)

func main() {
	os.Exit(cli.Run(cli.NewStatsCommand()))
}
