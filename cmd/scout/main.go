// Package main provides the scout CLI for querying League of Legends
// esports data from Leaguepedia.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "scout:", err)
		os.Exit(exitCode(err))
	}
}
