// Package cli implements the cobra-based CLI commands for boardcut.
//
// The root command only provides help text and global flags; actual
// functionality lives in the optimize and demo subcommands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the semantic version of the binary, injected at build time
// via ldflags.
var Version = "dev"

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "boardcut",
		Short: "Lumber cut list optimizer",
		Long: `boardcut computes the cheapest combination of boards to buy for a lumber
cut list, together with a board-by-board cutting plan and waste report.

Cuts and boards are matched by cross-section (e.g. 2x4); within each
cross-section an integer program over enumerated cutting patterns finds the
minimum-cost purchase, and the chosen patterns become the physical layout.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newOptimizeCommand())
	rootCmd.AddCommand(newDemoCommand())
	rootCmd.AddCommand(newCatalogCommand())

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
