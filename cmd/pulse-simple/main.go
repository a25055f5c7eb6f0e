// ABOUTME: Entry point for the pulse-simple demo programs
// ABOUTME: Runs the tone, spectrum and play commands
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
