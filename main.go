package main

import (
	"os"

	"github.com/byronwade/rebuzzle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
