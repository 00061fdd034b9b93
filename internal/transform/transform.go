package transform

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"

	"github.com/htmlslim/htmlslim/internal/model"
)

// Parse builds a document tree from HTML source. The parser is lenient
// the way browsers are, so "malformed" input normally still yields a
// tree; only truly unreadable input fails.
func Parse(src []byte) (*html.Node, error) {
	doc, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// Render serializes the document tree back to HTML bytes.
func Render(doc *html.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("failed to render HTML: %w", err)
	}
	return buf.Bytes(), nil
}

// Apply mutates doc according to the profile and returns the rendered
// result. The minify passes always run last so that text inserted by
// earlier passes (e.g. flattened input tokens) is whitespace-normalized
// like everything else.
func Apply(doc *html.Node, p model.Profile) ([]byte, error) {
	if p.Mode == model.ModeAggressive {
		stripNonText(doc, p)
		if p.FlattenInputs {
			flattenInputs(doc)
			flattenCourseKitMarkers(doc)
		}
	}

	if !p.KeepReaderColumns {
		stripClasses(doc, p.StripClasses)
	}
	removeComments(doc)
	collapseWhitespace(doc)

	return Render(doc)
}

// Run parses src, applies the profile, and returns the rendered result.
func Run(src []byte, p model.Profile) ([]byte, error) {
	doc, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return Apply(doc, p)
}
