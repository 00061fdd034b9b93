package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/htmlslim/htmlslim/internal/config"
	"github.com/htmlslim/htmlslim/internal/database"
	ilog "github.com/htmlslim/htmlslim/internal/log"
	"github.com/htmlslim/htmlslim/internal/model"
	"github.com/htmlslim/htmlslim/internal/pipeline"
	"github.com/htmlslim/htmlslim/internal/report"
)

// addProcessFlags registers the flags shared by analyze, minify and
// aggressive.
func addProcessFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("charset", "C", "",
		"Force the input character encoding (WHATWG label, e.g. shift_jis); default is auto-detect")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .htmlslim in current or home directory)")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of files processed concurrently")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("report", "r", "",
		"Write the report to the specified file instead of stdout")
}

// addTransformFlags registers the flags shared by minify and aggressive.
func addTransformFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "",
		"Output file path (only valid with a single input; default: <input>.<mode>.html)")
	cmd.Flags().BoolP("skip-existing", "s", false,
		"Skip inputs whose output file already exists")
	cmd.Flags().Bool("keep-reader-columns", false,
		"Keep reader-column wrapper elements instead of removing them")
	cmd.Flags().Bool("no-history", false,
		"Do not record this run in the history database")
}

// runProcessCmd is the shared RunE body for analyze, minify and aggressive.
func runProcessCmd(cmd *cobra.Command, args []string, mode model.Mode) error {
	cfg, err := buildConfig(cmd, args, mode)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runProcess(ctx, cfg, buildJobs(cmd, cfg), logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string, mode model.Mode) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Mode = mode
	cfg.Inputs = args
	cfg.Verbose = getVerboseFlag(cmd)

	var err error

	cfg.Charset, err = cmd.Flags().GetString("charset")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("report")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Transform-only flags
	if mode != model.ModeAnalyze {
		cfg.OutputPath, err = cmd.Flags().GetString("output")
		if err != nil {
			return nil, err
		}

		cfg.SkipExisting, err = cmd.Flags().GetBool("skip-existing")
		if err != nil {
			return nil, err
		}

		cfg.KeepReaderColumns, err = cmd.Flags().GetBool("keep-reader-columns")
		if err != nil {
			return nil, err
		}

		noHistory, err := cmd.Flags().GetBool("no-history")
		if err != nil {
			return nil, err
		}
		cfg.SaveHistory = !noHistory
	} else {
		// Analyze runs leave no output worth revisiting.
		cfg.SaveHistory = false
	}

	// Aggressive-only flags
	if mode == model.ModeAggressive {
		cfg.KeepImages, err = cmd.Flags().GetBool("keep-images")
		if err != nil {
			return nil, err
		}

		cfg.FlattenInputs, err = cmd.Flags().GetBool("flatten-inputs")
		if err != nil {
			return nil, err
		}

		cfg.DataURIThreshold, err = cmd.Flags().GetInt("data-uri-threshold")
		if err != nil {
			return nil, err
		}
	}

	// Load per-file configurations from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty config if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.FileConfigs, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
// Attribute values are trimmed so an HTML fragment or data: URI cannot
// flood the log.
func setupLogger(verbose bool) *slog.Logger {
	return ilog.NewTrimLogger(os.Stderr, verbose)
}

// buildProfile resolves the transformation profile for one input file.
// Precedence: explicit flags > per-file config > config defaults > built-in.
func buildProfile(cmd *cobra.Command, cfg *config.Config, input string) model.Profile {
	var profile model.Profile
	switch cfg.Mode {
	case model.ModeMinify:
		profile = model.MinifyProfile()
	case model.ModeAggressive:
		profile = model.AggressiveProfile()
	default:
		profile = model.Profile{Mode: cfg.Mode}
	}

	// Config file: defaults merged with the per-file entry
	if cfg.FileConfigs != nil {
		fc := cfg.FileConfigs.Get(filepath.Base(input))
		fc.ApplyTo(&profile)
		profile.StripClasses = cfg.FileConfigs.StripClassList()
	}

	// Flags win, but only when the user actually set them
	if cmd.Flags().Changed("keep-reader-columns") {
		profile.KeepReaderColumns = cfg.KeepReaderColumns
	}
	if cmd.Flags().Changed("keep-images") {
		profile.KeepImages = cfg.KeepImages
	}
	if cmd.Flags().Changed("flatten-inputs") {
		profile.FlattenInputs = cfg.FlattenInputs
	}
	if cmd.Flags().Changed("data-uri-threshold") {
		profile.DataURIThreshold = cfg.DataURIThreshold
	}

	return profile
}

// buildJobs creates one pipeline job per input file.
func buildJobs(cmd *cobra.Command, cfg *config.Config) []*pipeline.Job {
	jobs := make([]*pipeline.Job, 0, len(cfg.Inputs))
	for _, input := range cfg.Inputs {
		job := &pipeline.Job{
			InputPath:    input,
			Profile:      buildProfile(cmd, cfg, input),
			Charset:      cfg.Charset,
			SkipExisting: cfg.SkipExisting,
		}
		if cfg.Mode != model.ModeAnalyze {
			job.OutputPath = cfg.OutputPathFor(input)
		}
		jobs = append(jobs, job)
	}
	return jobs
}

// runProcess executes the pipeline over all jobs and writes the report.
func runProcess(ctx context.Context, cfg *config.Config, jobs []*pipeline.Job, logger *slog.Logger) error {
	logger.Info("starting",
		"mode", cfg.Mode,
		"inputs", len(cfg.Inputs),
		"batchSize", cfg.BatchSize,
		"saveHistory", cfg.SaveHistory,
	)

	// Open the history database only when this run records to it
	var db *database.HistoryDB
	if cfg.SaveHistory {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer db.Close()
		logger.Info("history database opened", "dir", cfg.DBDir)
	}

	factory := func() *pipeline.Pipeline {
		p := pipeline.New(pipeline.WithLogger(logger))
		p.AddSteps(
			pipeline.NewLoadStep(),
			pipeline.NewAnalyzeStep(),
			pipeline.NewTransformStep(),
			pipeline.NewWriteStep(),
			pipeline.NewRecordStep(db),
		)
		return p
	}

	bp := pipeline.NewBatchProcessor(factory,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	reports, err := bp.ProcessBatch(ctx, jobs)
	if err != nil {
		return err
	}

	return outputReports(cfg, reports)
}

// outputReports writes the collected reports in the requested format.
func outputReports(cfg *config.Config, reports []*model.SizeReport) error {
	if len(reports) == 0 {
		fmt.Println("Nothing to report (all inputs skipped).")
		return nil
	}

	// Determine output destination
	output := os.Stdout
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create report directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		output = f
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(output, report.WithIndent("", "  "))
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewTextWriter(output, report.WithVerbose(cfg.Verbose))
	}

	if _, err := writer.WriteAll(reports); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
