package model

// Mode identifies the operation selected on the command line.
type Mode string

// Operation modes. Analyze only reports; minify and aggressive also
// rewrite the document.
const (
	// ModeAnalyze computes a SizeReport without writing output.
	ModeAnalyze Mode = "analyze"

	// ModeMinify removes comments and redundant whitespace losslessly.
	ModeMinify Mode = "minify"

	// ModeAggressive additionally strips scripts, styles, embeds and
	// event handlers while preserving visible text.
	ModeAggressive Mode = "aggressive"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeAnalyze, ModeMinify, ModeAggressive:
		return true
	}
	return false
}

// DefaultStripClasses are class attribute values whose elements are
// removed by default. Reader columns are layout-only wrappers emitted by
// quiz exports; dropping them never affects visible answer text.
var DefaultStripClasses = []string{
	"reader_column left_column",
	"reader_column right_column",
}

// DefaultDataURIThreshold is the decoded size in bytes above which an
// embedded data: URI in a kept image is dropped by the aggressive profile.
const DefaultDataURIThreshold = 4096

// Profile is a named transformation configuration: a set of removal rules
// and flags. Rules within a profile are applied independently; removal
// operations are idempotent and commute, so application order does not
// affect the final document.
type Profile struct {
	// Mode selects which rule set applies (minify or aggressive).
	Mode Mode

	// KeepImages retains <img> elements in aggressive mode. Oversized
	// embedded data: URIs are still dropped from kept images.
	KeepImages bool

	// KeepReaderColumns disables the default reader-column removal.
	KeepReaderColumns bool

	// FlattenInputs replaces checkbox/radio inputs with literal text
	// tokens so checked state survives without scripting or styling.
	FlattenInputs bool

	// StripClasses are exact class attribute values whose elements are
	// removed unless KeepReaderColumns is set.
	StripClasses []string

	// DataURIThreshold is the decoded byte size above which embedded
	// data: URIs are dropped from kept images. Zero means the default.
	DataURIThreshold int
}

// MinifyProfile returns the lossless profile with default rules.
func MinifyProfile() Profile {
	return Profile{
		Mode:             ModeMinify,
		StripClasses:     DefaultStripClasses,
		DataURIThreshold: DefaultDataURIThreshold,
	}
}

// AggressiveProfile returns the text-preserving strip profile with
// default rules.
func AggressiveProfile() Profile {
	return Profile{
		Mode:             ModeAggressive,
		StripClasses:     DefaultStripClasses,
		DataURIThreshold: DefaultDataURIThreshold,
	}
}

// Threshold returns the effective data URI threshold.
func (p Profile) Threshold() int {
	if p.DataURIThreshold <= 0 {
		return DefaultDataURIThreshold
	}
	return p.DataURIThreshold
}
