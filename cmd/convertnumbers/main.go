// convertnumbers reads one integer per line from a text file and reports
// each as binary and uppercase hexadecimal.
package main

import (
	"os"

	"github.com/rvaldez/textreport/internal/cli"
)

func main() {
	os.Exit(cli.Run(cli.NewConvertCommand()))
}
