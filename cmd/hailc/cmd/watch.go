package cmd

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/hail-lang/hail/internal/diag"
	"github.com/hail-lang/hail/internal/manifest"
)

var watchManifestPath string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-parse source units as they change",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Load(watchManifestPath)
		if err != nil {
			return err
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()

		dir := filepath.Dir(watchManifestPath)
		for _, src := range m.Sources {
			root := src
			if !filepath.IsAbs(root) {
				root = filepath.Join(dir, src)
			}
			if err := watcher.Add(root); err != nil {
				return fmt.Errorf("watch %s: %w", root, err)
			}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "watching %v\n", m.Sources)

		formatter := diag.NewFormatter()
		for {
			select {
			case <-ctx.Done():
				return nil
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				return err
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if filepath.Ext(ev.Name) != manifest.SourceExt {
					continue
				}

				_, src, err := parseFile(ev.Name)
				if err == nil {
					fmt.Fprintf(out, "%s: ok\n", ev.Name)
					continue
				}
				if !report(formatter, ev.Name, src, err) {
					fmt.Fprintf(out, "%s: %v\n", ev.Name, err)
				}
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchManifestPath, "manifest", "m", "hail.toml", "path to the package manifest")
	rootCmd.AddCommand(watchCmd)
}
