// Package config provides configuration structures and utilities for
// htmlslim. It defines the options driving analysis and transformation,
// the YAML configuration file format with per-file overrides, and the
// XDG directory helpers for the history database.
package config
