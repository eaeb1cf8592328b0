// Package main is the entry point for the evctl CLI
package main

import (
	"os"

	"github.com/ev-platform/evctl/cmd"
	"github.com/ev-platform/evctl/internal/output"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		cliErr := output.ClassifyError(err)
		output.NewPrinter(false).FormatError(cliErr)
		os.Exit(cliErr.ExitCode)
	}
}
