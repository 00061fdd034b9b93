// Package textenc converts HTML source files to UTF-8.
//
// Static exports are not always UTF-8: older tooling emits windows-1252
// or ISO-8859 variants, usually but not always declared in a meta tag.
// The transformer always serializes UTF-8, so input is normalized first.
package textenc
