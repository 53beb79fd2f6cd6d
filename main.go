package main

import (
	"os"

	"github.com/neatsheets/neatsheets/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
