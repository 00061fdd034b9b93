package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/htmlslim/htmlslim/internal/model"
)

// Default configuration values.
const (
	// DefaultBatchSize of 4 concurrent transforms keeps a batch of quiz
	// exports fast without thrashing the disk. Each job holds a full
	// document tree in memory, so this is deliberately conservative.
	DefaultBatchSize = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "htmlslim"
)

// Config holds all options for a single htmlslim invocation.
// This struct is populated from CLI flags and the configuration file and
// passed through the application via dependency injection rather than
// global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// Mode is the selected operation (analyze, minify, aggressive).
	Mode model.Mode

	// Inputs are the HTML files to process.
	Inputs []string

	// OutputPath is an explicit output file path. Only valid with a
	// single input; otherwise outputs derive from the input names.
	OutputPath string

	// Charset forces an input encoding (WHATWG label). Empty means
	// auto-detect.
	Charset string

	// KeepImages retains <img> elements in aggressive mode.
	KeepImages bool

	// KeepReaderColumns disables the default reader-column removal.
	KeepReaderColumns bool

	// FlattenInputs converts checkbox/radio widgets to text tokens.
	FlattenInputs bool

	// DataURIThreshold is the decoded size above which embedded data:
	// URIs are dropped from kept images. Zero means the default.
	DataURIThreshold int

	// SkipExisting skips inputs whose output file already exists. This
	// is the only cross-invocation state check; it is a plain file
	// existence test.
	SkipExisting bool

	// BatchSize is the number of inputs processed concurrently.
	BatchSize int

	// ConfigFilePath is the path to the configuration file. If empty,
	// the tool searches for .htmlslim in the current directory and then
	// in the user's home directory.
	ConfigFilePath string

	// FileConfigs holds per-file settings loaded from the config file.
	FileConfigs *File

	// JSONReport enables JSON report output instead of human-readable
	// text. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable text. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report. When set, the
	// report is written to this file instead of stdout.
	ReportFile string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// SaveHistory records successful transform runs in the history
	// database. Enabled by default for minify/aggressive runs.
	SaveHistory bool

	// DBDir is the directory holding the SQLite history database.
	// Defaults to the XDG data directory.
	DBDir string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero. This also serves as
// documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		BatchSize:   DefaultBatchSize,
		SaveHistory: true,
		DBDir:       XDGDataDir(),
		FileConfigs: &File{Files: make(map[string]FileConfig)},
	}
}

// XDGDataDir returns the XDG data directory for htmlslim.
// On Linux: ~/.local/share/htmlslim
// On macOS: ~/Library/Application Support/htmlslim
// On Windows: %LOCALAPPDATA%\htmlslim
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for htmlslim.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate once after CLI parsing, before touching
// any file, to fail fast with a clear message. The first error found is
// returned because fixing one often makes the others irrelevant.
func (c *Config) Validate() error {
	if !c.Mode.Valid() {
		return ErrInvalidMode
	}
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.OutputPath != "" && len(c.Inputs) > 1 {
		return ErrOutputWithMultipleInputs
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.DataURIThreshold < 0 {
		return ErrInvalidThreshold
	}
	return nil
}

// OutputPathFor returns the output file path for the given input.
// An explicit OutputPath wins; otherwise the name derives from the
// input path plus a mode-specific suffix, e.g. quiz.html -> quiz.minify.html.
func (c *Config) OutputPathFor(input string) string {
	if c.OutputPath != "" {
		return c.OutputPath
	}
	return DefaultOutputPath(input, c.Mode)
}

// DefaultOutputPath derives an output file name from the input path and mode.
func DefaultOutputPath(input string, mode model.Mode) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + string(mode) + ".html"
}
