// Package datauri extracts and sizes base64 data: URIs embedded in
// attribute values. Both the analyzer (byte accounting, EXIF inspection)
// and the transformer (oversized-image stripping) need the same decoding,
// so it lives in its own small package to avoid an import cycle.
package datauri
