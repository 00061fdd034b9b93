package transform

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/htmlslim/htmlslim/internal/datauri"
	"github.com/htmlslim/htmlslim/internal/model"
)

// strippedRelTokens are link rel tokens whose elements the aggressive
// profile removes. Stylesheets and resource hints only matter to a page
// that still runs scripts and styles.
var strippedRelTokens = map[string]bool{
	"stylesheet": true,
	"preload":    true,
	"preconnect": true,
}

// stripNonText removes scripts, styles, embeds, event handlers and
// (optionally) images from the tree. Visible text is never touched.
func stripNonText(doc *html.Node, p model.Profile) {
	// Elements that never contribute rendered text.
	for _, n := range collect(doc, func(n *html.Node) bool {
		return isAnyElement(n, "script", "style", "iframe", "embed", "object")
	}) {
		detach(n)
	}

	// External stylesheets and resource hints.
	for _, n := range collect(doc, func(n *html.Node) bool {
		if !isElement(n, "link") {
			return false
		}
		for _, token := range relTokens(n) {
			if strippedRelTokens[token] {
				return true
			}
		}
		return false
	}) {
		detach(n)
	}

	// Inline event handlers on every remaining element.
	walk(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		kept := n.Attr[:0]
		for _, a := range n.Attr {
			if !eventHandlerAttrs[strings.ToLower(a.Key)] {
				kept = append(kept, a)
			}
		}
		n.Attr = kept
		return true
	})

	if p.KeepImages {
		stripOversizedDataURIs(doc, p.Threshold())
	} else {
		for _, n := range collect(doc, func(n *html.Node) bool {
			return isElement(n, "img")
		}) {
			detach(n)
		}
	}
}

// stripOversizedDataURIs drops src/srcset attributes holding embedded
// data: URIs whose decoded payload exceeds the threshold. Small inline
// icons survive; multi-kilobyte screenshots do not.
func stripOversizedDataURIs(doc *html.Node, threshold int) {
	walk(doc, func(n *html.Node) bool {
		if !isAnyElement(n, "img", "source") {
			return true
		}
		for _, key := range []string{"src", "srcset"} {
			val := attrVal(n, key)
			if val == "" || !datauri.HasPrefix(val) {
				continue
			}
			if datauri.TotalDecodedLen(val) > threshold {
				removeAttr(n, key)
			}
		}
		return true
	})
}
