package config

import "github.com/htmlslim/htmlslim/internal/model"

// FileConfig holds transformation settings for a single input file.
// Pointer fields distinguish "not set" from an explicit false, so a
// per-file entry only overrides what it actually mentions.
type FileConfig struct {
	// KeepImages retains <img> elements in aggressive mode.
	KeepImages *bool `yaml:"keep_images,omitempty"`

	// KeepReaderColumns disables reader-column removal.
	KeepReaderColumns *bool `yaml:"keep_reader_columns,omitempty"`

	// FlattenInputs converts checkbox/radio widgets to text tokens.
	FlattenInputs *bool `yaml:"flatten_inputs,omitempty"`

	// DataURIThreshold overrides the embedded-image size threshold.
	DataURIThreshold int `yaml:"data_uri_threshold,omitempty"`
}

// File represents the structure of the .htmlslim configuration file.
type File struct {
	// Defaults contains settings applied to every file unless
	// overridden in the per-file configuration.
	Defaults FileConfig `yaml:"defaults,omitempty"`

	// StripClasses are exact class attribute values whose elements are
	// removed. When empty, the built-in reader-column pair applies.
	StripClasses []string `yaml:"strip_classes,omitempty"`

	// Files maps input base names (e.g. "quiz01.html") to their
	// file-specific configurations.
	Files map[string]FileConfig `yaml:"files,omitempty"`
}

// Get returns the configuration for a specific input base name,
// merging the per-file entry over the defaults.
func (cf *File) Get(base string) FileConfig {
	result := cf.Defaults

	if fc, ok := cf.Files[base]; ok {
		if fc.KeepImages != nil {
			result.KeepImages = fc.KeepImages
		}
		if fc.KeepReaderColumns != nil {
			result.KeepReaderColumns = fc.KeepReaderColumns
		}
		if fc.FlattenInputs != nil {
			result.FlattenInputs = fc.FlattenInputs
		}
		if fc.DataURIThreshold != 0 {
			result.DataURIThreshold = fc.DataURIThreshold
		}
	}
	return result
}

// ApplyTo copies the set fields of the configuration onto a profile.
func (fc FileConfig) ApplyTo(p *model.Profile) {
	if fc.KeepImages != nil {
		p.KeepImages = *fc.KeepImages
	}
	if fc.KeepReaderColumns != nil {
		p.KeepReaderColumns = *fc.KeepReaderColumns
	}
	if fc.FlattenInputs != nil {
		p.FlattenInputs = *fc.FlattenInputs
	}
	if fc.DataURIThreshold != 0 {
		p.DataURIThreshold = fc.DataURIThreshold
	}
}

// StripClassList returns the configured strip classes, falling back to
// the built-in reader-column defaults.
func (cf *File) StripClassList() []string {
	if len(cf.StripClasses) > 0 {
		return cf.StripClasses
	}
	return model.DefaultStripClasses
}
