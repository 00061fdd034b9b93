package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/htmlslim/htmlslim/internal/model"
)

// TextWriter outputs human-readable text reports.
// This format is designed for terminal display.
//
// Design decision: Byte counts are grouped with thousands separators via
// x/text/message because the interesting numbers here are routinely
// six or seven digits, and "1,482,095 B" reads at a glance where
// "1482095 B" does not.
type TextWriter struct {
	baseWriter

	// printer formats numbers with locale-aware digit grouping.
	printer *message.Printer

	// verbose enables additional detail in the output.
	verbose bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) TextWriterOption {
	return func(w *TextWriter) {
		w.verbose = verbose
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
		printer:    message.NewPrinter(language.English),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *TextWriter) Write(report *model.SizeReport) (int, error) {
	var sb strings.Builder
	w.writeReport(&sb, report)
	return w.output.Write([]byte(sb.String()))
}

// WriteAll outputs each report followed by a combined savings summary.
func (w *TextWriter) WriteAll(reports []*model.SizeReport) (int, error) {
	var sb strings.Builder
	for _, r := range reports {
		w.writeReport(&sb, r)
	}
	if len(reports) > 1 {
		w.writeTotals(&sb, reports)
	}
	return w.output.Write([]byte(sb.String()))
}

// writeReport writes one report.
func (w *TextWriter) writeReport(sb *strings.Builder, r *model.SizeReport) {
	sb.WriteString(strings.Repeat("=", 64))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "%s (%s)\n", r.InputPath, r.Mode)
	sb.WriteString(strings.Repeat("=", 64))
	sb.WriteString("\n")

	w.line(sb, "File size", r.FileSize, "B")
	w.line(sb, "Minified (no removals) size", r.MinifiedSize, "B")
	w.line(sb, "Visible text characters (approx)", r.TextChars, "")
	w.line(sb, "Comments total", r.CommentsBytes, "B")
	fmt.Fprintf(sb, "%-34s %s B (count: %d)\n", "<script> content:",
		w.num(r.ScriptsBytes), r.ScriptsCount)
	fmt.Fprintf(sb, "%-34s %s B (count: %d)\n", "<style> content:",
		w.num(r.StylesBytes), r.StylesCount)
	w.line(sb, "Inline style attributes", r.InlineStyleBytes, "B")
	fmt.Fprintf(sb, "%-34s %s B (images: %d)\n", "Inline data: URIs:",
		w.num(r.DataURIBytes), r.ImagesCount)

	if r.EXIFImagesCount > 0 || w.verbose {
		fmt.Fprintf(sb, "%-34s %d (with GPS tags: %d)\n", "Embedded images with EXIF:",
			r.EXIFImagesCount, r.EXIFGPSCount)
	}

	if r.OutputPath != "" {
		sb.WriteString("\n")
		fmt.Fprintf(sb, "Wrote: %s\n", r.OutputPath)
		fmt.Fprintf(sb, "New size: %s B (saved %s B, %.2f%%)\n",
			w.num(r.OutputSize), w.num(r.SavedBytes()), r.SavedPercent())
	}
	sb.WriteString("\n")
}

// writeTotals writes the combined savings across a batch.
func (w *TextWriter) writeTotals(sb *strings.Builder, reports []*model.SizeReport) {
	var inBytes, saved, written int
	for _, r := range reports {
		inBytes += r.FileSize
		if r.OutputPath != "" {
			saved += r.SavedBytes()
			written++
		}
	}

	sb.WriteString(strings.Repeat("-", 64))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "Processed %d file(s), %s B total", len(reports), w.num(inBytes))
	if written > 0 {
		pct := float64(saved) / float64(inBytes) * 100
		fmt.Fprintf(sb, ", saved %s B (%.2f%%)", w.num(saved), pct)
	}
	sb.WriteString("\n")
}

// line writes one aligned "label: value unit" row.
func (w *TextWriter) line(sb *strings.Builder, label string, n int, unit string) {
	if unit != "" {
		fmt.Fprintf(sb, "%-34s %s %s\n", label+":", w.num(n), unit)
		return
	}
	fmt.Fprintf(sb, "%-34s %s\n", label+":", w.num(n))
}

// num formats an integer with thousands separators.
func (w *TextWriter) num(n int) string {
	return w.printer.Sprintf("%d", n)
}
