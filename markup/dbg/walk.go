package dbg

import (
	"github.com/npillmayer/htmlctx/markup"
	"github.com/npillmayer/htmlctx/tree"
)

// Predicate decides whether a markup node should be selected.
type Predicate func(n markup.Node) bool

// IsElement is a predicate to match element nodes of a markup tree.
var IsElement = func(n markup.Node) bool {
	_, ok := n.(*markup.Element)
	return ok
}

// HasTag returns a predicate to match nodes with a given tag name.
func HasTag(tag string) Predicate {
	return func(n markup.Node) bool {
		return n.TagName() == tag
	}
}

// Find collects all nodes of the tree below (and including) n matching
// pred, in document order.
func Find(n markup.Node, pred Predicate) []markup.Node {
	if n == nil {
		return nil
	}
	var found []markup.Node
	n.TreeNode().Walk(func(tn *tree.Node[markup.Node], depth int) error {
		if pred(markup.NodeOf(tn)) {
			found = append(found, markup.NodeOf(tn))
		}
		return nil
	})
	tracer().Debugf("found %d matching nodes below <%s>", len(found), n.TagName())
	return found
}
