package tree

import "errors"

// ErrEmptyTree is returned if Walk is called for a nil node.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// ErrSkipChildren may be returned by a visitor to prevent Walk from
// descending into the children of the current node. It is not reported as
// an error.
var ErrSkipChildren = errors.New("skip children")

// Visitor is called by Walk for every node, together with the depth of
// the node relative to the start node (which has depth 0).
type Visitor[T any] func(n *Node[T], depth int) error

// Walk traverses the (sub-)tree starting at node depth first, visiting
// a parent before its children and children in order.
// The first error returned by visit stops the walk and is returned to
// the caller.
func (node *Node[T]) Walk(visit Visitor[T]) error {
	if node == nil {
		return ErrEmptyTree
	}
	return walk(node, 0, visit)
}

func walk[T any](node *Node[T], depth int, visit Visitor[T]) error {
	if err := visit(node, depth); err != nil {
		if errors.Is(err, ErrSkipChildren) {
			return nil
		}
		return err
	}
	for _, ch := range node.children {
		if err := walk(ch, depth+1, visit); err != nil {
			return err
		}
	}
	return nil
}
