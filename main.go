package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/driftlint/driftlint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "driftlint:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode lets commands carry an explicit status (the audit command does)
// while everything else fails with 1.
func exitCode(err error) int {
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}
