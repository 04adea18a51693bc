package main

import (
	"os"

	"github.com/Spaaern/pubcrawl-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
