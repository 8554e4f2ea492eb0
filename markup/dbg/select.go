package dbg

import (
	"errors"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/htmlctx/markup"
	"golang.org/x/net/html"
)

// ErrNoNode is returned by Select if called for a nil node.
var ErrNoNode = errors.New("no markup node to select from")

// Parse renders n and parses the resulting markup into an HTML parse tree.
// The HTML parser completes fragments to a full document, i.e. the markup
// of an element will end up within <html><body>.
func Parse(n markup.Node) (*html.Node, error) {
	if n == nil {
		return nil, ErrNoNode
	}
	return html.Parse(strings.NewReader(n.String()))
}

// Select renders n and returns all HTML nodes of the rendered markup
// matching a CSS selector.
func Select(n markup.Node, selector string) ([]*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(n)
	if err != nil {
		return nil, err
	}
	found := sel.MatchAll(doc)
	tracer().P("selector", selector).Debugf("%d node(s) match", len(found))
	return found, nil
}

// AttrOf returns the value of attribute key of an HTML node.
func AttrOf(h *html.Node, key string) (string, bool) {
	if h == nil {
		return "", false
	}
	for _, a := range h.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// TextOf returns the concatenated text of all text nodes below h.
func TextOf(h *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	if h != nil {
		collect(h)
	}
	return b.String()
}
