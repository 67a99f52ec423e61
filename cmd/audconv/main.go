// SPDX-License-Identifier: EPL-2.0

// Command audconv converts audio files to WAV.
//
// Usage:
//
//	audconv [flags] <command> [args]
//
// Commands:
//
//	convert    - Convert files to a target format
//	probe      - Show what the decoders make of files
//	version    - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/ik5/audconv/cmd/audconv/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
