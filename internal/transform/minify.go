package transform

import (
	"strings"

	"golang.org/x/net/html"
)

// removeComments drops every comment node in the tree.
func removeComments(doc *html.Node) {
	for _, n := range collect(doc, func(n *html.Node) bool {
		return n.Type == html.CommentNode
	}) {
		detach(n)
	}
}

// stripClasses removes elements whose class attribute exactly matches
// one of the given values. The match is exact on the raw attribute value:
// the reader-column wrappers we target always carry the same two-class
// string, and a token-wise match would risk catching unrelated layouts.
func stripClasses(doc *html.Node, classes []string) {
	if len(classes) == 0 {
		return
	}
	for _, n := range collect(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		class := attrVal(n, "class")
		for _, c := range classes {
			if class == c {
				return true
			}
		}
		return false
	}) {
		detach(n)
	}
}

// collapseWhitespace rewrites text nodes so that every run of ASCII
// whitespace becomes a single space. A run is never dropped outright:
// keeping one separator guarantees adjacent words cannot merge. Content
// inside pre, textarea, script, and style is left untouched.
//
// The rewrite is a fixed point: collapsing already-collapsed text is a
// no-op, which is what makes repeated minify runs byte-identical.
func collapseWhitespace(doc *html.Node) {
	var visit func(n *html.Node, preserve bool)
	visit = func(n *html.Node, preserve bool) {
		if n.Type == html.ElementNode {
			if isAnyElement(n, "pre", "textarea", "script", "style") {
				preserve = true
			}
		}
		if n.Type == html.TextNode && !preserve {
			n.Data = collapseRuns(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c, preserve)
		}
	}
	visit(doc, false)
}

// collapseRuns replaces each run of ASCII whitespace with one space.
// Non-breaking spaces and other Unicode whitespace are deliberately kept:
// they are rendered content, not formatting slack.
func collapseRuns(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
		default:
			b.WriteRune(r)
			inRun = false
		}
	}
	return b.String()
}
