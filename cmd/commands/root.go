// Package commands implements the docursor CLI.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	// Define root command
	rootCmd := &cobra.Command{
		Use:   "docursor",
		Short: "Cursor pagination toolkit for document stores",
	}

	rootCmd.PersistentFlags().String("conf", "config.yaml", "path to the configuration file")

	// Add subcommands
	rootCmd.AddCommand(
		NewSeedCommand(),
		NewScanCommand(),
		NewLookupCommand(),
		NewVersionCommand(),
	)

	return rootCmd
}
