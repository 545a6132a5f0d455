// SPDX-License-Identifier: MIT
// Package: mwis/internal/cli
//
// root.go - root command, version info and entry point.

// Package cli implements the mwis command-line interface.
//
// Commands:
//   - solve: run one engine on an instance file and print a YAML report
//   - bench: run every engine on an instance and tabulate the outcomes
//   - gen:   write a generated instance file
//
// All commands accept --verbose (-v) for debug logging. The logger travels
// in the command context; engines receive it through solver.WithLogger.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion records build information shown by --version; main calls it
// with values injected through ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand assembles the command tree. Logs go to the command's
// error stream, reports to its output stream.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "mwis",
		Short:         "Decentralized maximum weight independent set heuristics",
		Long:          `mwis runs local-greedy, relaxed-greedy and annealing heuristics for the maximum weight independent set problem on graph instance files.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("mwis %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newBenchCmd())
	root.AddCommand(newGenCmd())

	return root
}

// Execute runs the CLI under ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
