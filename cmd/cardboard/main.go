// Package main is the entry point for the cardboard CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/cardboard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
