// wordcount reads a text file and reports the frequency of each distinct
// normalized word in first-seen order.
package main

import (
	"os"

	"github.com/rvaldez/textreport/internal/cli"
)

func main() {
	os.Exit(cli.Run(cli.NewWordCountCommand()))
}
