// Package main is the entry point for the hofvidz server.
package main

import (
	"os"

	"github.com/RaviKishore94/hofvidz-3.0project/cmd/hofvidz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
