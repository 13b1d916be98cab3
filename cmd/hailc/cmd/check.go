package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hail-lang/hail/internal/diag"
	"github.com/hail-lang/hail/internal/manifest"
)

var checkManifestPath string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Parse every source unit named by the package manifest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Load(checkManifestPath)
		if err != nil {
			return err
		}

		files, err := m.SourceFiles()
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("%s: no source units under %v", m.Package.Name, m.Sources)
		}

		formatter := diag.NewFormatter()
		failed := 0
		for _, path := range files {
			_, src, err := parseFile(path)
			if err == nil {
				continue
			}
			if !report(formatter, path, src, err) {
				return err
			}
			failed++
		}

		if failed > 0 {
			return fmt.Errorf("%s: %d of %d source units failed to parse", m.Package.Name, failed, len(files))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d source units ok\n", m.Package.Name, m.Package.Version, len(files))
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkManifestPath, "manifest", "m", "hail.toml", "path to the package manifest")
	rootCmd.AddCommand(checkCmd)
}
