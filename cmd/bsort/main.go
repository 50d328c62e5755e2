package main

import (
	"os"

	"bsort/cmd/bsort/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
