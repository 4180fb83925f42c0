// Package main is the fittrackctl admin CLI: schema migration, per-user
// training summaries and the stdio MCP server.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
