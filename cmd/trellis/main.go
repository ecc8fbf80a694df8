// Package main is the entry point for the trellis CLI tool.
package main

import (
	"os"

	"github.com/willow/trellis/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
