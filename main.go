// Package main provides the ferris-fetch command-line tool for displaying
// system information beside Ferris the crab.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ferris-fetch:", err)
		os.Exit(1)
	}
}
