// Root command for the gridcheck harness.
package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "v0.1.0"

// newRootCmd builds the gridcheck command writing results to out and logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   "gridcheck",
		Short: "Run the Grid demonstration checks",
		Long: `gridcheck constructs, increments, prints, resizes and searches Grid
instances, printing a Pass/Fail line for every checked condition followed by
the rendered grids.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configFile)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{
				Level: cfg.LogLevel,
			}))

			failed, err := runChecks(out, logger, cfg)
			if err != nil {
				return err
			}
			if cfg.Strict && failed > 0 {
				return fmt.Errorf("gridcheck: %d check(s) failed", failed)
			}

			return nil
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml)")
	registerFlags(root)
	root.SetOut(out)
	root.SetErr(errOut)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the gridcheck version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "gridcheck", version)
		},
	})

	return root
}
