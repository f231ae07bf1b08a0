// Package main is the entry point for the rr CLI client.
package main

import (
	"github.com/jcloud242/resale-radar/cmd/rr/cmd"
)

func main() {
	cmd.Execute()
}
