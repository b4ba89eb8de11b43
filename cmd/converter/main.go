// Command converter exports the active item list of the newest Flipping
// Copilot preferences file to CSV, or imports it back with --import.
package main

import (
	"os"

	"itemlists/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.NewConverterCommand()))
}
