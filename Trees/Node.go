package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Node is a vertex of Tree. It owns its children exclusively; a nil child
// means the slot is empty. Nodes are only created and relinked by Tree, so
// outside the package a Node is read-only.
type Node[T constraints.Ordered] struct {
	v    T
	l, r *Node[T]
}

func (n *Node[T]) Value() T {
	return n.v
}

func (n *Node[T]) Left() *Node[T] {
	return n.l
}

func (n *Node[T]) Right() *Node[T] {
	return n.r
}

func (n *Node[T]) IsLeaf() bool {
	return n.l == nil && n.r == nil
}

func (n *Node[T]) HasExactlyOneChild() bool {
	return (n.l == nil) != (n.r == nil)
}

func (n *Node[T]) HasTwoChildren() bool {
	return n.l != nil && n.r != nil
}

// TheOnlyChild returns the single child of n. The result is only meaningful
// when HasExactlyOneChild is true.
func (n *Node[T]) TheOnlyChild() *Node[T] {
	if n.l != nil {
		return n.l
	}
	return n.r
}

// Compare the values of n and o, returning -1, 0 or +1 like cmp.Compare.
func (n *Node[T]) Compare(o *Node[T]) int {
	return cmp.Compare(n.v, o.v)
}

// height of the subtree rooted at n in edges; -1 for the empty subtree.
// Recursive.
func height[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return -1
	}
	return max(height(n.l), height(n.r)) + 1
}
