// Package main is the entry point for the hv CLI client.
package main

import (
	"github.com/RaviKishore94/hofvidz-3.0project/cmd/hv/cmd"
)

func main() {
	cmd.Execute()
}
