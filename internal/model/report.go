package model

import "time"

// SizeReport is the byte-count breakdown of a single HTML document.
// It is computed once by the analyzer and never mutated afterwards.
//
// Design decision: We use a single flat struct rather than nesting counts
// under sub-structs because every consumer (text, JSON, markdown writers and
// the history database) wants the whole thing, and a flat shape keeps the
// JSON output trivially greppable.
type SizeReport struct {
	// InputPath is the path of the analyzed HTML file.
	InputPath string `json:"input_path"`

	// Mode is the operation that produced this report.
	Mode Mode `json:"mode"`

	// AnalyzedAt is the timestamp when the analysis was performed.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// === Totals ===

	// FileSize is the raw input size in bytes.
	FileSize int `json:"file_size"`

	// MinifiedSize is the estimated size after the minify profile.
	// This is computed by actually minifying a copy of the document,
	// so it is exact for minify runs and an estimate for everything else.
	MinifiedSize int `json:"minified_size"`

	// TextChars is the approximate number of visible text characters,
	// excluding script and style content.
	TextChars int `json:"text_chars"`

	// === Per-category byte counts ===

	// CommentsBytes is the total size of HTML comment contents.
	CommentsBytes int `json:"comments_bytes"`

	// ScriptsBytes is the total size of <script> bodies plus their
	// src attribute values.
	ScriptsBytes int `json:"scripts_bytes"`

	// ScriptsCount is the number of <script> elements.
	ScriptsCount int `json:"scripts_count"`

	// StylesBytes is the total size of <style> bodies.
	StylesBytes int `json:"styles_bytes"`

	// StylesCount is the number of <style> elements.
	StylesCount int `json:"styles_count"`

	// InlineStyleBytes is the total size of style="..." attribute values.
	InlineStyleBytes int `json:"inline_style_bytes"`

	// DataURIBytes is the decoded size of base64 data: URIs found in
	// img/source src and srcset attributes and in style attributes.
	DataURIBytes int `json:"data_uri_bytes"`

	// ImagesCount is the number of img/source elements carrying a data: URI.
	ImagesCount int `json:"images_count"`

	// === Embedded image metadata ===

	// EXIFImagesCount is the number of embedded data-URI images whose
	// decoded payload contains EXIF metadata.
	EXIFImagesCount int `json:"exif_images_count"`

	// EXIFGPSCount is how many of those images carry GPS tags.
	// Worth surfacing separately: a quiz export with geotagged photos
	// leaks more than bytes.
	EXIFGPSCount int `json:"exif_gps_count"`

	// === Output (set only when a transform wrote a file) ===

	// OutputPath is the path of the written output file, if any.
	OutputPath string `json:"output_path,omitempty"`

	// OutputSize is the size of the written output file in bytes.
	OutputSize int `json:"output_size,omitempty"`
}

// SavedBytes returns how many bytes the transform removed.
// It returns 0 when no output was written.
func (r *SizeReport) SavedBytes() int {
	if r.OutputPath == "" {
		return 0
	}
	return r.FileSize - r.OutputSize
}

// SavedPercent returns the size reduction as a percentage of the input.
// It returns 0 for empty inputs or when no output was written.
func (r *SizeReport) SavedPercent() float64 {
	if r.FileSize == 0 || r.OutputPath == "" {
		return 0
	}
	return float64(r.SavedBytes()) / float64(r.FileSize) * 100
}

// RemovableBytes returns the sum of all bytes the aggressive profile
// can drop without touching visible text.
func (r *SizeReport) RemovableBytes() int {
	return r.CommentsBytes + r.ScriptsBytes + r.StylesBytes + r.InlineStyleBytes + r.DataURIBytes
}
