package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hail-lang/hail/internal/ast"
	"github.com/hail-lang/hail/internal/diag"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source unit and dump its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		unit, src, err := parseFile(path)
		if err != nil {
			if report(diag.NewFormatter(), path, src, err) {
				return fmt.Errorf("%s: parse failed", path)
			}
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), ast.Dump(unit))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
