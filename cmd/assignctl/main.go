// Package main is the entry point for the assignctl operator CLI.
package main

import (
	"fmt"
	"os"

	"assignment-workflow-backend/internal/cli"
)

// Version information (set at build time)
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
