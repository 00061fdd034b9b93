// Package log provides logging utilities built on top of the standard
// slog package.
//
// The TrimHandler wraps any slog.Handler and truncates oversized string
// attribute values before they reach the underlying handler. htmlslim
// logs HTML fragments and attribute values at debug level, and a quiz
// export routinely carries megabyte data: URIs; without trimming, one
// debug line can dwarf the rest of the log.
//
// # Usage
//
//	logger := log.NewTrimLogger(os.Stderr, true) // verbose=true
//	slog.SetDefault(logger)
//
//	logger.Debug("dropping attribute",
//	    "value", hugeDataURI, // logged as a prefix plus "...(+N bytes)"
//	)
package log
