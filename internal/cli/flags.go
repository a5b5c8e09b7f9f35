// Package cli provides flag binding and validation for the rtprep CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// Options holds the CLI-surface settings of rtprep. They configure the tool,
// not the simulation: every simulation parameter comes from the document.
type Options struct {
	Report     string
	SkipImages bool
	Verbose    bool
	NoColor    bool
}

// BindFlags registers all rtprep flags on the given cobra command.
// The flags directly modify fields in the provided options pointer.
func BindFlags(cmd *cobra.Command, opts *Options) {
	flags := cmd.Flags()

	flags.StringVar(&opts.Report, "report", "", "Write the resolved configuration as JSON to this path")
	flags.BoolVar(&opts.SkipImages, "skip-images", false, "Skip the final-iteration image-extraction pass")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Print per-step debug output")
	flags.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")
}

// ValidateFlags checks flag values after parsing.
// Must be called after cmd.Execute() or cmd.ParseFlags().
func ValidateFlags(cmd *cobra.Command, opts *Options) error {
	if opts.Report != "" {
		dir := filepath.Dir(opts.Report)
		if dir != "." {
			if info, err := os.Stat(dir); err == nil && !info.IsDir() {
				return fmt.Errorf("--report: %s is not a directory", dir)
			}
		}
	}
	return nil
}
