// Command matcher cleans item image file names, looks them up in the complete
// item list, and writes matched_items.csv and unmatched_items.txt.
package main

import (
	"os"

	"itemlists/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.NewMatcherCommand()))
}
