package Trees

import "golang.org/x/exp/constraints"

// BinarySearchTree is an ordered set of values kept in a binary search tree.
// Receivers that have a bool as a second return value indicate whether the
// first return value is defined. For example, calling Minimum on an empty
// tree returns (x T, false), and x should not be used.
// Methods implemented recursively are noted, otherwise they are iterative.
type BinarySearchTree[T constraints.Ordered] interface {
	//Insert v to the tree. Returns false if v is already present, in which
	//case the tree is unchanged.
	Insert(v T) bool
	//Delete v from the tree. Returns false if v isn't present.
	Delete(v T) bool
	//Find the node holding v, nil if v isn't present.
	Find(v T) *Node[T]
	//Has v in the tree.
	Has(v T) bool
	//Height of the node holding v: the edges on the longest path down to a leaf.
	Height(v T) (int, bool)
	//Depth of the node holding v: the edges from the root down to it.
	Depth(v T) (int, bool)
	//IsBalanced reports whether the subtree heights of every node differ
	//by at most 1. An empty tree is not balanced.
	IsBalanced() bool
	//Rebalance rebuilds the tree into a minimal height shape.
	Rebalance()
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Size of the tree. Computed by a traversal, O(n).
	Size() int
	PreOrder() []T
	InOrder() []T
	PostOrder() []T
	LevelOrder() []T
	PreOrderFunc(f func(*Node[T]))
	InOrderFunc(f func(*Node[T]))
	PostOrderFunc(f func(*Node[T]))
	LevelOrderFunc(f func(*Node[T]))
}

var _ BinarySearchTree[int] = (*Tree[int])(nil)
