package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/htmlslim/htmlslim/internal/config"
	"github.com/htmlslim/htmlslim/internal/database"
	"github.com/htmlslim/htmlslim/internal/model"
	"github.com/htmlslim/htmlslim/internal/report"
)

// NewHistoryCmd creates the history command.
// This command inspects past runs stored in the history database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [file]",
		Short: "Show past runs recorded in the history database",
		Long: `History displays past minify and aggressive runs for an input file.

Runs are recorded automatically after each successful transform (unless
--no-history was given), so history shows how a file's size developed
across re-exports and which output was written when.

Examples:
  # List every input file seen so far
  htmlslim history

  # Show all runs for one file
  htmlslim history lecture.html

  # Show the five most recent runs
  htmlslim history --limit 5 lecture.html

  # Dump the full stored reports for one run
  htmlslim history --run-id 12 lecture.html

  # Machine-readable output
  htmlslim history --json lecture.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", 0,
		"Show at most this many runs (0 = all)")
	cmd.Flags().Int64P("run-id", "i", 0,
		"Show the full stored report for a single run (use the ID from the listing)")
	cmd.Flags().BoolP("json", "j", false,
		"Output full reports in JSON format")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output full reports in Markdown format")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	markdownOutput, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	if jsonOutput && markdownOutput {
		return config.ErrConflictingReportFormats
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	runID, err := cmd.Flags().GetInt64("run-id")
	if err != nil {
		return err
	}

	// History never creates the database; a missing file means no runs yet.
	db, err := database.Open(config.XDGDataDir(),
		database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return errors.New("no run history found (run 'htmlslim minify' or 'htmlslim aggressive' first)")
	}
	defer db.Close()

	ctx := context.Background()

	if runID > 0 {
		return showRun(ctx, db, runID, jsonOutput, markdownOutput)
	}

	if len(args) == 0 {
		return listHistoryInputs(ctx, db)
	}

	return showHistory(ctx, db, args[0], limit, jsonOutput, markdownOutput)
}

// listHistoryInputs lists all input files that have recorded runs.
func listHistoryInputs(ctx context.Context, db *database.HistoryDB) error {
	inputs, err := db.ListInputs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list inputs: %w", err)
	}

	if len(inputs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println("\nUse 'htmlslim minify <file>' to process a file.")
		return nil
	}

	fmt.Printf("Processed files (%d):\n\n", len(inputs))
	for _, input := range inputs {
		fmt.Printf("  • %s\n", input)
	}
	fmt.Println("\nUse 'htmlslim history <file>' to see the runs for a file.")

	return nil
}

// showRun prints the full stored report of a single run.
func showRun(ctx context.Context, db *database.HistoryDB, runID int64, jsonOutput, markdownOutput bool) error {
	r, err := db.GetRunByID(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to get run %d: %w", runID, err)
	}
	if r == nil {
		return fmt.Errorf("run with ID %d not found", runID)
	}

	_, err = historyWriter(jsonOutput, markdownOutput).Write(r)
	return err
}

// showHistory prints the recorded runs for one input file.
func showHistory(ctx context.Context, db *database.HistoryDB, inputPath string, limit int, jsonOutput, markdownOutput bool) error {
	// Matching is on the path exactly as recorded.
	if jsonOutput || markdownOutput {
		reports, err := db.GetRunHistory(ctx, inputPath)
		if err != nil {
			return fmt.Errorf("failed to get run history: %w", err)
		}
		if len(reports) == 0 {
			return fmt.Errorf("no run history found for %s", inputPath)
		}
		reports = limitReports(reports, limit)

		_, err = historyWriter(jsonOutput, markdownOutput).WriteAll(reports)
		return err
	}

	metas, err := db.GetRunHistoryWithMetadata(ctx, inputPath)
	if err != nil {
		return fmt.Errorf("failed to get run history: %w", err)
	}
	if len(metas) == 0 {
		fmt.Printf("No run history found for %s\n", inputPath)
		fmt.Println("\nUse 'htmlslim minify' or 'htmlslim aggressive' to process this file.")
		return nil
	}
	if limit > 0 && len(metas) > limit {
		metas = metas[:limit]
	}

	fmt.Printf("Run history for %s (%d runs):\n\n", inputPath, len(metas))
	fmt.Printf("  %-6s  %-20s  %-10s  %-12s  %-12s  %s\n",
		"ID", "Date", "Mode", "Input", "Output", "Saved")
	fmt.Println("  " + strings.Repeat("-", 78))

	for _, meta := range metas {
		fmt.Printf("  %-6d  %-20s  %-10s  %-12s  %-12s  %s\n",
			meta.ID,
			meta.Timestamp.Format("2006-01-02 15:04:05"),
			meta.Mode,
			strconv.Itoa(meta.FileSize)+" B",
			strconv.Itoa(meta.OutputSize)+" B",
			formatSaved(meta.FileSize, meta.OutputSize),
		)
	}

	fmt.Println("\nUse 'htmlslim history --run-id <id>' to see a run's full report.")

	return nil
}

// historyWriter selects the report writer for history output.
func historyWriter(jsonOutput, markdownOutput bool) report.Writer {
	switch {
	case jsonOutput:
		return report.NewJSONWriter(os.Stdout, report.WithIndent("", "  "))
	case markdownOutput:
		return report.NewMarkdownWriter(os.Stdout)
	default:
		return report.NewTextWriter(os.Stdout)
	}
}

// limitReports truncates reports to the requested limit.
func limitReports(reports []*model.SizeReport, limit int) []*model.SizeReport {
	if limit > 0 && len(reports) > limit {
		return reports[:limit]
	}
	return reports
}

// formatSaved renders the size reduction of one run.
func formatSaved(fileSize, outputSize int) string {
	if outputSize <= 0 || fileSize <= 0 {
		return "-"
	}
	saved := fileSize - outputSize
	pct := float64(saved) / float64(fileSize) * 100
	return fmt.Sprintf("%d B (%.1f%%)", saved, pct)
}
