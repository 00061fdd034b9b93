// Package model defines the core data structures used throughout htmlslim.
//
// This package contains the following main types:
//   - SizeReport: Byte-count breakdown of a single HTML document
//   - Profile: A named transformation profile (minify or aggressive)
//   - Mode: The operation selected on the command line
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (analyze, transform, report, database) need
// these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
