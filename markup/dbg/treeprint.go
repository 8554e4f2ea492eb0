package dbg

import (
	"fmt"

	"github.com/npillmayer/htmlctx/markup"
	tp "github.com/xlab/treeprint"
)

// TreePrint returns an outline of the markup tree below n, one node per
// line, showing tag names, attributes and text.
func TreePrint(n markup.Node) string {
	printer := tp.New()
	if n != nil {
		printNode(printer, n)
	}
	return printer.String()
}

func printNode(printer tp.Tree, n markup.Node) {
	tn := n.TreeNode()
	if tn.ChildCount() == 0 {
		printer.AddNode(label(n))
		return
	}
	branch := printer.AddBranch(label(n))
	for _, ch := range tn.Children() {
		printNode(branch, markup.NodeOf(ch))
	}
}

func label(n markup.Node) string {
	switch node := n.(type) {
	case *markup.Document:
		return "html (document)"
	case *markup.Section:
		return node.TagName() + " (section)"
	case *markup.Element:
		s := node.TagName()
		if node.IsSingle() {
			s += "/"
		}
		if node.Attributes().Len() > 0 {
			s += " [" + node.Attributes().String() + "]"
		}
		if node.Text() != "" {
			s += fmt.Sprintf(" %q", node.Text())
		}
		return s
	}
	return n.TagName()
}
