// Package cli wires the terminal app behind a cobra command: flag parsing,
// path resolution and the load-on-start / save-on-exit contract.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rtnt-cli/internal/app"
	"rtnt-cli/internal/store"
	"rtnt-cli/internal/tui"
)

type options struct {
	File string
	Dir  string
	Keys string
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "rtnt",
		Short:        "Real-time note taker",
		Long:         "Capture timestamped notes and section headers during a live session; entries persist as CSV.",
		Args:         cobra.NoArgs,
		Version:      "0.1.0",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", envOr("RTNT_FILE", ""), "CSV file to load on start and save on exit")
	cmd.Flags().StringVar(&opts.Dir, "dir", envOr("RTNT_DIR", ""), "Save directory for session files (default: user config dir)")
	cmd.Flags().StringVar(&opts.Keys, "keys", envOr("RTNT_KEYS", ""), "Key-bindings config file (default: keybindings.json in the config dir)")

	return cmd
}

func runSession(opts *options) error {
	a := app.New(resolvePaths(opts))

	// A missing or unreadable session file means a fresh session, not a
	// startup failure; the file gets (re)written on exit.
	if opts.File != "" {
		_ = a.LoadFromFileInPlace(opts.File)
	}

	if err := tui.Run(a); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	// Losing the session on exit is the one failure worth a nonzero exit.
	if opts.File != "" {
		if err := a.SaveToFile(opts.File); err != nil {
			return fmt.Errorf("save %s: %w", opts.File, err)
		}
	}
	return nil
}

func resolvePaths(opts *options) store.Paths {
	paths := store.DefaultPaths()
	if opts.Dir != "" {
		paths.SaveDir = opts.Dir
	}
	if opts.Keys != "" {
		paths.BindingsFile = opts.Keys
	}
	return paths
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
