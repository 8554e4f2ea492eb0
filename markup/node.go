package markup

import (
	"io"

	"github.com/npillmayer/htmlctx/tree"
)

// Node is implemented by every node of a markup tree: *Document, *Section
// and *Element.
type Node interface {
	TagName() string                    // tag name of the node ("html" for documents)
	String() string                     // complete HTML markup of the subtree
	WriteTo(w io.Writer) (int64, error) // write String() to w
	TreeNode() *tree.Node[Node]         // position of the node in the document tree
}

// newTreeNode creates a tree node whose payload references n.
func newTreeNode(n Node) *tree.Node[Node] {
	return tree.NewNode(n)
}

// NodeOf gets the markup node from a generic tree node.
func NodeOf(n *tree.Node[Node]) Node {
	if n == nil {
		return nil
	}
	return n.Payload
}

func addChild(parent *tree.Node[Node], ch Node) {
	if ch == nil {
		return
	}
	tracer().Debugf("adding <%s> to <%s>", ch.TagName(), parent.Payload.TagName())
	parent.AddChild(ch.TreeNode())
}

func writeString(w io.Writer, s string) (int64, error) {
	n, err := io.WriteString(w, s)
	return int64(n), err
}
