// Package main provides the entry point for the htmlslim CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for htmlslim.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "htmlslim",
		Short: "Inspect and reduce the size of static HTML files",
		Long: `htmlslim inspects and reduces the byte size of static HTML documents.

The analyze command tabulates where the bytes live: scripts, styles,
comments, inline styles, and embedded data: URI images. The minify and
aggressive commands rewrite the document, from safe whitespace and
comment removal up to stripping everything that is not visible text.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewMinifyCmd())
	cmd.AddCommand(NewAggressiveCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
