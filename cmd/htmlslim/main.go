// Package main provides the entry point for the htmlslim CLI.
//
// htmlslim inspects and reduces the byte size of static HTML documents.
// It reports where the bytes live (scripts, styles, comments, embedded
// images) and rewrites documents with a conservative or aggressive
// reduction profile.
//
// Usage:
//
//	htmlslim analyze <file>
//	htmlslim minify <file>...
//	htmlslim aggressive --flatten-inputs <file>...
//
// See --help for all available options.
package main

// main is the entry point for htmlslim.
func main() {
	Execute()
}
