package main

import (
	"os"

	"itemlists/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.NewRootCommand()))
}
