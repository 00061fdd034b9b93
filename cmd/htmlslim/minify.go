package main

import (
	"github.com/spf13/cobra"

	"github.com/htmlslim/htmlslim/internal/model"
)

// NewMinifyCmd creates the minify command.
func NewMinifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minify <file>...",
		Short: "Rewrite HTML with comments and redundant whitespace removed",
		Long: `Minify rewrites an HTML document without changing its visible text.

It removes all comments, collapses runs of whitespace in text to a
single space (content of <pre>, <textarea>, <script> and <style> is
left untouched), and drops reader-column layout wrappers unless
--keep-reader-columns is given. Running minify on its own output
produces identical bytes.

Output is written next to the input as <name>.minify.html unless -o
is given.

Examples:
  # Minify a single file
  htmlslim minify lecture.html

  # Minify a batch, four files at a time
  htmlslim minify --batch 4 exports/*.html

  # Keep the two-column reader layout
  htmlslim minify --keep-reader-columns lecture.html

  # Re-run a batch, skipping files already done
  htmlslim minify --skip-existing exports/*.html

Configuration file (.htmlslim) example:
  defaults:
    keep_reader_columns: false
  files:
    quiz01.html:
      keep_reader_columns: true`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcessCmd(cmd, args, model.ModeMinify)
		},
	}

	addProcessFlags(cmd)
	addTransformFlags(cmd)

	return cmd
}
