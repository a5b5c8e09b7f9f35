package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/photonforge/rtprep/internal/banner"
	"github.com/photonforge/rtprep/internal/cli"
	"github.com/photonforge/rtprep/internal/exitcode"
	"github.com/photonforge/rtprep/internal/logging"
	"github.com/photonforge/rtprep/internal/report"
	"github.com/photonforge/rtprep/internal/resolve"
	"github.com/photonforge/rtprep/internal/store"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	opts := &cli.Options{}

	rootCmd := &cobra.Command{
		Use:     "rtprep <parameter-file>",
		Short:   "Resolve and validate a radiative-transfer run configuration",
		Long:    "rtprep reads a hierarchical parameter document (YAML or TOML), resolves the photon budgets, mode flags and output settings of a Monte Carlo radiative-transfer run, and rejects any internally-inconsistent configuration before the simulation starts.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateFlags(cmd, opts); err != nil {
				return err
			}
			os.Exit(run(args[0], opts))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cli.BindFlags(rootCmd, opts)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.Error)
	}
}

func run(input string, opts *cli.Options) int {
	logging.SetVerbose(opts.Verbose)
	if opts.NoColor {
		color.NoColor = true
	}

	root, err := store.OpenFile(input)
	if err != nil {
		logging.Error(err.Error())
		return exitcode.Error
	}

	resolver := resolve.New()

	logging.Phase("Initial resolution")
	rc, err := resolver.Initial(root)
	if err != nil {
		logging.Error(err.Error())
		return exitcode.FromError(err)
	}
	logging.Debug(fmt.Sprintf("resolved %d temperature iterations, precision %s",
		rc.NIterations, rc.Precision))

	if !opts.SkipImages {
		logging.Phase("Final-iteration resolution")
		if err := resolver.FinalIteration(root, rc); err != nil {
			logging.Error(err.Error())
			return exitcode.FromError(err)
		}
		logging.Debug(fmt.Sprintf("image extraction: binned=%v, peeled=%d",
			rc.BinnedEnabled(), len(rc.Peeled)))
	}

	banner.PrintResolved(input, rc)

	if opts.Report != "" {
		if err := report.Write(opts.Report, input, rc); err != nil {
			logging.Error(err.Error())
			return exitcode.Error
		}
		logging.Info("report written to " + opts.Report)
	}

	logging.Success("configuration is valid")
	return exitcode.Success
}
