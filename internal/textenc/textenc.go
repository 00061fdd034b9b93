package textenc

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
)

// Decode converts src to UTF-8.
//
// When name is non-empty it must be an encoding label from the WHATWG
// encoding registry (e.g. "iso-8859-1", "shift_jis") and is applied
// unconditionally. Otherwise the encoding is sniffed from a BOM or meta
// tag; valid UTF-8 input is returned unchanged, because the sniffer's
// windows-1252 fallback would otherwise mangle undeclared UTF-8.
func Decode(src []byte, name string) ([]byte, error) {
	if name != "" {
		enc, err := htmlindex.Get(name)
		if err != nil {
			return nil, fmt.Errorf("unknown charset %q: %w", name, err)
		}
		out, err := enc.NewDecoder().Bytes(src)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s input: %w", name, err)
		}
		return out, nil
	}

	if utf8.Valid(src) {
		return src, nil
	}

	enc, detected, _ := charset.DetermineEncoding(src, "")
	out, err := enc.NewDecoder().Bytes(src)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s input: %w", detected, err)
	}
	return out, nil
}
