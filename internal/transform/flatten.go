package transform

import (
	"strings"

	"golang.org/x/net/html"
)

// Text tokens that replace checkbox/radio widgets when flattening.
// The trailing space keeps the token from fusing with the answer text
// once whitespace is collapsed.
const (
	TokenCheckboxChecked   = "[x] "
	TokenCheckboxUnchecked = "[ ] "
	TokenRadioChecked      = "(•) "
	TokenRadioUnchecked    = "( ) "
)

// flattenInputs replaces native checkbox and radio inputs with literal
// text tokens reflecting their checked state. The token is inserted as a
// text node where the input stood, so the answer state stays visible
// with no styling or scripting at all.
func flattenInputs(doc *html.Node) {
	for _, n := range collect(doc, func(n *html.Node) bool {
		if !isElement(n, "input") {
			return false
		}
		t := strings.ToLower(attrVal(n, "type"))
		return t == "checkbox" || t == "radio"
	}) {
		radio := strings.EqualFold(attrVal(n, "type"), "radio")
		checked := hasAttr(n, "checked")
		insertTextBefore(n, inputToken(radio, checked))
		detach(n)
	}
}

func inputToken(radio, checked bool) string {
	switch {
	case radio && checked:
		return TokenRadioChecked
	case radio:
		return TokenRadioUnchecked
	case checked:
		return TokenCheckboxChecked
	default:
		return TokenCheckboxUnchecked
	}
}

// flattenCourseKitMarkers handles uuCourseKit quiz exports, which draw
// checkboxes and radios as styled <span> markers instead of native
// inputs. The pattern is a marker span followed by a sibling <div>
// holding the answer text. Shape and checked state are inferred from
// inline styles and state classes:
//   - border-radius: 100% (or the 32px marker width) means radio
//   - a *-result-state class means checked
//   - otherwise an inner indicator element is checked unless its style
//     hides it with visibility: hidden
//   - an opacity: 0.6 on the answer text means unselected
func flattenCourseKitMarkers(doc *html.Node) {
	for _, marker := range collect(doc, func(n *html.Node) bool {
		return isElement(n, "span") &&
			strings.Contains(strings.ToLower(attrVal(n, "class")), "uu-coursekit")
	}) {
		textDiv := nextDivSibling(marker)
		if textDiv == nil || strings.TrimSpace(textContent(textDiv)) == "" {
			continue
		}
		radio, checked := courseKitState(marker, textDiv)
		insertTextBefore(textDiv, inputToken(radio, checked))
		detach(marker)
	}
}

// nextDivSibling returns the first following sibling that is a <div>.
func nextDivSibling(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if isElement(s, "div") {
			return s
		}
	}
	return nil
}

// courseKitState infers the widget shape and checked state of a
// uuCourseKit marker span.
func courseKitState(marker, textDiv *html.Node) (radio, checked bool) {
	style := strings.ToLower(attrVal(marker, "style"))
	radio = strings.Contains(style, "border-radius: 100%") ||
		strings.Contains(style, "border-radius:100%") ||
		strings.Contains(style, "width: 32px")

	classes := strings.ToLower(attrVal(marker, "class"))
	if strings.Contains(classes, "result-state") {
		return radio, true
	}

	if inner := courseKitIndicator(marker); inner != nil {
		innerStyle := strings.ToLower(attrVal(inner, "style"))
		hidden := strings.Contains(innerStyle, "visibility: hidden") ||
			strings.Contains(innerStyle, "visibility:hidden")
		return radio, !hidden
	}

	// Unselected answers are usually dimmed to 60% opacity.
	sibStyle := strings.ToLower(attrVal(textDiv, "style"))
	if strings.Contains(sibStyle, "opacity: 0.6") || strings.Contains(sibStyle, "opacity:.6") {
		return radio, false
	}

	return radio, false
}

// courseKitIndicator finds the explicit inner state element of a marker:
// a FontAwesome icon or a *-state-background element.
func courseKitIndicator(marker *html.Node) *html.Node {
	var found *html.Node
	walk(marker, func(n *html.Node) bool {
		if found != nil || n == marker || n.Type != html.ElementNode {
			return found == nil
		}
		class := strings.ToLower(attrVal(n, "class"))
		for _, token := range strings.Fields(class) {
			if token == "fa" {
				found = n
				return false
			}
		}
		if strings.Contains(class, "uu-coursekit-result-state-background") ||
			strings.Contains(class, "uu-coursekit-wrong-state-background") {
			found = n
			return false
		}
		return true
	})
	return found
}
