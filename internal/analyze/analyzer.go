package analyze

import (
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/htmlslim/htmlslim/internal/datauri"
	"github.com/htmlslim/htmlslim/internal/model"
	"github.com/htmlslim/htmlslim/internal/transform"
)

// Run parses src and produces a complete SizeReport for it.
func Run(inputPath string, src []byte) (*model.SizeReport, error) {
	doc, err := transform.Parse(src)
	if err != nil {
		return nil, err
	}

	report := &model.SizeReport{
		InputPath:  inputPath,
		Mode:       model.ModeAnalyze,
		AnalyzedAt: time.Now(),
		FileSize:   len(src),
	}

	a := &accumulator{report: report}
	a.walk(doc, false)
	report.TextChars = utf8.RuneCountInString(strings.Join(a.textParts, " "))

	// The estimate comes from a fresh parse so the tree walked above is
	// never mutated.
	minified, err := transform.Run(src, model.MinifyProfile())
	if err != nil {
		return nil, err
	}
	report.MinifiedSize = len(minified)

	return report, nil
}

// accumulator carries the per-category tallies during a single tree walk.
type accumulator struct {
	report    *model.SizeReport
	textParts []string
}

// walk visits every node once, accumulating all categories in a single
// pass. inNonText marks descent into script/style so their text does not
// count as visible content.
func (a *accumulator) walk(n *html.Node, inNonText bool) {
	switch n.Type {
	case html.CommentNode:
		a.report.CommentsBytes += len(n.Data)

	case html.TextNode:
		if !inNonText {
			if trimmed := strings.TrimSpace(n.Data); trimmed != "" {
				a.textParts = append(a.textParts, trimmed)
			}
		}

	case html.ElementNode:
		a.element(n)
		if isTag(n, "script") || isTag(n, "style") {
			inNonText = true
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		a.walk(c, inNonText)
	}
}

// element accumulates the per-element categories.
func (a *accumulator) element(n *html.Node) {
	switch {
	case isTag(n, "script"):
		a.report.ScriptsCount++
		a.report.ScriptsBytes += len(nodeText(n))
		a.report.ScriptsBytes += len(attr(n, "src"))

	case isTag(n, "style"):
		a.report.StylesCount++
		a.report.StylesBytes += len(nodeText(n))

	case isTag(n, "img") || isTag(n, "source"):
		src := attr(n, "src")
		if src == "" {
			src = attr(n, "srcset")
		}
		if src != "" && datauri.HasPrefix(src) {
			a.report.ImagesCount++
			a.dataURIs(src)
		}
	}

	if style := attr(n, "style"); style != "" {
		a.report.InlineStyleBytes += len(style)
		a.dataURIs(style)
	}
}

// dataURIs accounts for embedded payload bytes and inspects decodable
// image payloads for EXIF metadata.
func (a *accumulator) dataURIs(val string) {
	for _, u := range datauri.Extract(val) {
		a.report.DataURIBytes += u.DecodedLen()
		if u.IsImage() && u.Data != nil {
			hasEXIF, hasGPS := inspectEXIF(u.Data)
			if hasEXIF {
				a.report.EXIFImagesCount++
			}
			if hasGPS {
				a.report.EXIFGPSCount++
			}
		}
	}
}

// isTag reports whether n is an element with the given lowercase name.
func isTag(n *html.Node, name string) bool {
	return n.Type == html.ElementNode && strings.EqualFold(n.Data, name)
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// nodeText returns the immediate text content of n's subtree.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
			visit(cc)
		}
	}
	visit(n)
	return b.String()
}
