// Package main provides the CLI entrypoint for kanadrill.
package main

import (
	"os"

	"github.com/ayato/kanadrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
