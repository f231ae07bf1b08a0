// Package main is the entry point for the resale-radar server.
package main

import (
	"os"

	"github.com/jcloud242/resale-radar/cmd/resale-radar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
