package main

import (
	"os"

	"github.com/arcanaland/freecell/cmd"
)

func main() {
	// Cobra prints the error itself
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
