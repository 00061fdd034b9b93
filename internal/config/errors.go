package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoInput is returned when no input file is specified.
	ErrNoInput = errors.New("no input specified: provide one or more HTML files")

	// ErrInvalidMode is returned when the operation mode is unknown.
	ErrInvalidMode = errors.New("invalid mode: must be analyze, minify, or aggressive")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no files are ever processed.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrOutputWithMultipleInputs is returned when -o is combined with
	// more than one input file. Derived names are the only way to keep
	// multiple outputs apart.
	ErrOutputWithMultipleInputs = errors.New("explicit output path requires exactly one input file")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidThreshold is returned when the data URI threshold is
	// negative. Use 0 to keep the default.
	ErrInvalidThreshold = errors.New("invalid data URI threshold: must be non-negative")
)
