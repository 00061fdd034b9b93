package datauri

import (
	"encoding/base64"
	"regexp"
	"strings"
)

// pattern matches base64-encoded data: URIs. Non-base64 data URIs
// (e.g. percent-encoded SVG) are rare in the documents we target and
// contribute their bytes to the attribute counts anyway.
var pattern = regexp.MustCompile(`data:[^;,]+;base64,([A-Za-z0-9+/=]+)`)

// URI is one base64 data: URI found in an attribute value.
type URI struct {
	// MediaType is the declared media type, e.g. "image/png".
	MediaType string

	// Data is the decoded payload, or nil if decoding failed.
	Data []byte

	// EncodedLen is the length of the base64 text, used to estimate
	// the payload size when decoding fails.
	EncodedLen int
}

// DecodedLen returns the payload size in bytes. When the payload could
// not be decoded it falls back to 3/4 of the base64 length, which is the
// exact ratio for well-formed base64 without padding.
func (u URI) DecodedLen() int {
	if u.Data != nil {
		return len(u.Data)
	}
	return u.EncodedLen * 3 / 4
}

// IsImage reports whether the URI declares an image media type.
func (u URI) IsImage() bool {
	return strings.HasPrefix(u.MediaType, "image/")
}

// HasPrefix reports whether s starts with the data: scheme after
// trimming leading whitespace.
func HasPrefix(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "data:")
}

// Extract returns all base64 data: URIs found in s.
func Extract(s string) []URI {
	if s == "" || !strings.Contains(s, "data:") {
		return nil
	}

	matches := pattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}

	uris := make([]URI, 0, len(matches))
	for _, m := range matches {
		mediaType := strings.TrimPrefix(m[0][:strings.Index(m[0], ";")], "data:")
		b64 := m[1]

		u := URI{
			MediaType:  mediaType,
			EncodedLen: len(b64),
		}
		if data, err := base64.StdEncoding.DecodeString(b64); err == nil {
			u.Data = data
		} else if data, err := base64.RawStdEncoding.DecodeString(b64); err == nil {
			// Some exporters omit padding.
			u.Data = data
		}
		uris = append(uris, u)
	}
	return uris
}

// TotalDecodedLen sums the decoded payload sizes of every base64
// data: URI in s.
func TotalDecodedLen(s string) int {
	total := 0
	for _, u := range Extract(s) {
		total += u.DecodedLen()
	}
	return total
}
