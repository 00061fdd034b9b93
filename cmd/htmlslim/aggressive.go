package main

import (
	"github.com/spf13/cobra"

	"github.com/htmlslim/htmlslim/internal/model"
)

// NewAggressiveCmd creates the aggressive command.
func NewAggressiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggressive <file>...",
		Short: "Rewrite HTML keeping only the visible text content",
		Long: `Aggressive strips everything from an HTML document that is not
visible text, then minifies the result.

Removed unconditionally: <script>, <style>, <iframe>, <embed>,
<object>, stylesheet/preload/preconnect <link> elements, comments, and
inline event-handler attributes (onclick, onload, ...). Images are
removed too unless --keep-images is given; kept images still lose
embedded data: URIs larger than the threshold.

With --flatten-inputs, checkbox and radio widgets become plain text
tokens: [x] and [ ] for checkboxes, (•) and ( ) for radios, so quiz
answers survive the form controls being stripped.

Output is written next to the input as <name>.aggressive.html unless
-o is given.

Examples:
  # Strip a lecture export to its text
  htmlslim aggressive lecture.html

  # Keep images but drop embedded ones larger than 64 KiB
  htmlslim aggressive --keep-images --data-uri-threshold 65536 lecture.html

  # Preserve quiz answers as text tokens
  htmlslim aggressive --flatten-inputs quiz01.html`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcessCmd(cmd, args, model.ModeAggressive)
		},
	}

	addProcessFlags(cmd)
	addTransformFlags(cmd)

	cmd.Flags().BoolP("keep-images", "k", false,
		"Keep <img> elements instead of removing them")
	cmd.Flags().Bool("flatten-inputs", false,
		"Replace checkbox/radio widgets with text tokens")
	cmd.Flags().Int("data-uri-threshold", model.DefaultDataURIThreshold,
		"Decoded size in bytes above which embedded data: URIs are dropped from kept images")

	return cmd
}
