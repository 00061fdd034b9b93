package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/htmlslim/htmlslim/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs a single report in Markdown format.
func (w *MarkdownWriter) Write(report *model.SizeReport) (int, error) {
	return w.WriteAll([]*model.SizeReport{report})
}

// WriteAll outputs the reports in Markdown format, one section each.
func (w *MarkdownWriter) WriteAll(reports []*model.SizeReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("htmlslim Report")
	md.PlainText("")

	for _, r := range reports {
		w.writeReport(md, r)
	}

	if len(reports) > 1 {
		w.writeTotals(md, reports)
	}
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeTotals writes an aggregate table across all reports.
func (w *MarkdownWriter) writeTotals(md *markdown.Markdown, reports []*model.SizeReport) {
	var fileSize, outputSize, saved int
	for _, r := range reports {
		fileSize += r.FileSize
		outputSize += r.OutputSize
		saved += r.SavedBytes()
	}

	md.H2("Totals")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Files processed", strconv.Itoa(len(reports))},
			{"Total input size", strconv.Itoa(fileSize) + " B"},
			{"Total output size", strconv.Itoa(outputSize) + " B"},
			{"Total saved", strconv.Itoa(saved) + " B"},
		},
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [htmlslim](https://github.com/htmlslim/htmlslim)*")
}

// writeReport writes one report section.
func (w *MarkdownWriter) writeReport(md *markdown.Markdown, r *model.SizeReport) {
	md.H2(r.InputPath)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Mode", string(r.Mode)},
			{"Analyzed", r.AnalyzedAt.Format("2006-01-02 15:04:05 MST")},
			{"File size", strconv.Itoa(r.FileSize) + " B"},
			{"Minified size (estimate)", strconv.Itoa(r.MinifiedSize) + " B"},
			{"Visible text characters", strconv.Itoa(r.TextChars)},
		},
	})
	md.PlainText("")

	md.H3("Removable content")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Category", "Bytes", "Count"},
		Rows: [][]string{
			{"Comments", strconv.Itoa(r.CommentsBytes), "-"},
			{"`<script>` content", strconv.Itoa(r.ScriptsBytes), strconv.Itoa(r.ScriptsCount)},
			{"`<style>` content", strconv.Itoa(r.StylesBytes), strconv.Itoa(r.StylesCount)},
			{"Inline style attributes", strconv.Itoa(r.InlineStyleBytes), "-"},
			{"Embedded data: URIs", strconv.Itoa(r.DataURIBytes), strconv.Itoa(r.ImagesCount)},
		},
	})
	md.PlainText("")

	if r.EXIFImagesCount > 0 {
		if r.EXIFGPSCount > 0 {
			md.Warningf(
				"%d embedded image(s) carry EXIF metadata, %d with GPS coordinates.",
				r.EXIFImagesCount, r.EXIFGPSCount,
			)
		} else {
			md.Notef("%d embedded image(s) carry EXIF metadata.", r.EXIFImagesCount)
		}
		md.PlainText("")
	}

	if r.OutputPath != "" {
		md.PlainTextf("Wrote `%s`: %s B (saved %s B, %s).",
			r.OutputPath,
			strconv.Itoa(r.OutputSize),
			strconv.Itoa(r.SavedBytes()),
			fmt.Sprintf("%.2f%%", r.SavedPercent()),
		)
		md.PlainText("")
	}
}
