package transform

import (
	"strings"

	"golang.org/x/net/html"
)

// walk visits n and its descendants in document order.
// The visitor returns false to skip the node's children.
func walk(n *html.Node, visit func(*html.Node) bool) {
	if !visit(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// collect returns all descendants of n (including n) matching the
// predicate. Collecting before mutating keeps removal safe: detaching a
// node while walking its siblings would break the traversal.
func collect(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var nodes []*html.Node
	walk(n, func(c *html.Node) bool {
		if match(c) {
			nodes = append(nodes, c)
		}
		return true
	})
	return nodes
}

// detach removes n from its parent. Detaching a node also drops its
// entire subtree from the document.
func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// isElement reports whether n is an element with the given lowercase name.
func isElement(n *html.Node, name string) bool {
	return n.Type == html.ElementNode && strings.EqualFold(n.Data, name)
}

// isAnyElement reports whether n is an element with one of the given names.
func isAnyElement(n *html.Node, names ...string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, name := range names {
		if strings.EqualFold(n.Data, name) {
			return true
		}
	}
	return false
}

// attrVal returns the value of the named attribute, or "" if absent.
func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// hasAttr reports whether the named attribute is present.
func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return true
		}
	}
	return false
}

// removeAttr deletes the named attribute if present.
func removeAttr(n *html.Node, key string) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if !strings.EqualFold(a.Key, key) {
			kept = append(kept, a)
		}
	}
	n.Attr = kept
}

// relTokens returns the whitespace-separated tokens of a link's rel
// attribute, lowercased.
func relTokens(n *html.Node) []string {
	return strings.Fields(strings.ToLower(attrVal(n, "rel")))
}

// insertTextBefore inserts a new text node with the given content as the
// previous sibling of n.
func insertTextBefore(n *html.Node, text string) {
	if n.Parent == nil {
		return
	}
	n.Parent.InsertBefore(&html.Node{Type: html.TextNode, Data: text}, n)
}

// nextElementSibling returns the first element sibling after n, skipping
// text and comment nodes.
func nextElementSibling(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// textContent returns the concatenated text of n's subtree, excluding
// script and style bodies.
func textContent(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) bool {
		if isAnyElement(c, "script", "style") {
			return false
		}
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		return true
	})
	return b.String()
}
