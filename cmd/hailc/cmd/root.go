// Package cmd implements the hailc command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "hailc",
	Short:         "Front-end driver for the Hail language",
	Long:          "hailc parses Hail source units and reports lexical and syntax diagnostics.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hailc: %v\n", err)
		os.Exit(1)
	}
}
