package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

// Node is the base type our tree is built of.
type Node[T any] struct {
	parent   *Node[T]   // parent node of this node
	children []*Node[T] // children in order of insertion
	Payload  T          // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
func NewNode[T any](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a child node to the list of children of node.
// The newly inserted node is connected to this node as its parent.
// If ch is currently the child of another node, it is detached from there
// first; a node never has more than one parent.
// It returns the parent node to allow for chaining.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch == nil || ch == node {
		return node
	}
	if ch.parent != nil {
		tracer().Debugf("moving node %v to new parent", ch)
		ch.Isolate()
	}
	node.children = append(node.children, ch)
	ch.parent = node
	return node
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// Isolate removes a node from its parent. Siblings following node
// move up one position.
// Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node == nil || node.parent == nil {
		return node
	}
	p := node.parent
	if i := p.IndexOfChild(node); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	node.parent = nil
	return node
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	if node == nil {
		return 0
	}
	return len(node.children)
}

// Child returns the n-th child of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 || node.ChildCount() <= n {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a slice with all children of a node.
// The slice is a copy; modifying it does not change the tree.
func (node *Node[T]) Children() []*Node[T] {
	if node.ChildCount() == 0 {
		return nil
	}
	children := make([]*Node[T], len(node.children))
	copy(children, node.children)
	return children
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1 if ch is not a child of node.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}
