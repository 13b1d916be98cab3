package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hail-lang/hail/internal/diag"
	"github.com/hail-lang/hail/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the token stream of a source unit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		src := string(data)

		lx := lexer.New(src)
		lx.SetFilename(path)

		out := cmd.OutOrStdout()
		for {
			tok, err := lx.Next()
			if err != nil {
				if report(diag.NewFormatter(), path, src, err) {
					return fmt.Errorf("%s: lexing failed", path)
				}
				return err
			}
			if tok.Type == lexer.EOF {
				return nil
			}
			fmt.Fprintf(out, "%d:%d\t%s\t%q\n", tok.Span.Line, tok.Span.Column, tok.Type, tok.Raw)
		}
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
