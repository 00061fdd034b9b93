package main

import (
	"github.com/spf13/cobra"

	"github.com/htmlslim/htmlslim/internal/model"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <file>...",
		Short: "Report where the bytes of an HTML file live",
		Long: `Analyze tabulates the byte size of an HTML document by category.

It reports the raw file size, an estimate of the minified size, the
amount of visible text, and how many bytes are spent on comments,
<script> and <style> content, inline style attributes, and embedded
data: URI images. Embedded images are additionally checked for EXIF
metadata and GPS tags.

Nothing is written; analyze is a read-only report.

Examples:
  # Analyze a single file
  htmlslim analyze lecture.html

  # Analyze several files with a combined summary
  htmlslim analyze exports/*.html

  # Machine-readable output
  htmlslim analyze --json lecture.html

  # Force the input encoding
  htmlslim analyze --charset shift_jis lecture.html`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcessCmd(cmd, args, model.ModeAnalyze)
		},
	}

	addProcessFlags(cmd)

	return cmd
}
