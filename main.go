package main

import (
	"os"

	"github.com/jmorel/catalog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
