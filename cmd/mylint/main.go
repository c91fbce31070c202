// Package main provides the mylint command.
package main

import (
	"os"

	"github.com/RamilHin/my-linter/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
