package Trees

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree with no repeated values. It is built into a
// minimal height shape, but Insert and Delete don't rebalance it; call
// Rebalance to restore the shape after a sequence of modifications.
// The zero value is an empty tree ready to use.
//
// Tree is not safe for concurrent use. Callers that share a tree between
// goroutines must guard every call, reads included, with one lock.
//
// Values of a floating point T must not be NaN.
type Tree[T constraints.Ordered] struct {
	root *Node[T]
}

// New builds a tree holding the distinct values of vs. vs is not modified.
// Time: O(n log n).
func New[T constraints.Ordered](vs ...T) *Tree[T] {
	return &Tree[T]{build(sortedSet(slices.Clone(vs)))}
}

// FromSorted builds a tree from s, which must be sorted in ascending order
// and mustn't contain duplicate elements. If safe==true the conditions are
// checked and FromSorted panics with InvalidSliceError if they are broken.
// Otherwise it is up to the caller to ensure them, or the tree will be
// corrupt. s is not retained.
// Time: O(n).
func FromSorted[T constraints.Ordered](s []T, safe bool) *Tree[T] {
	if safe {
		for i := 1; i < len(s); i++ {
			if !(s[i-1] < s[i]) {
				panic(InvalidSliceError[T]{i, s[i-1], s[i]})
			}
		}
	}
	return &Tree[T]{build(s)}
}

// sortedSet sorts vs in place and drops repeated values.
func sortedSet[T constraints.Ordered](vs []T) []T {
	slices.Sort(vs)
	return slices.Compact(vs)
}

// build a subtree from the sorted set s by taking the element at len(s)/2
// as the root, so on even lengths the right of center element is chosen.
// The heights of the two subtrees of every node differ by at most 1.
// Recursive.
func build[T constraints.Ordered](s []T) *Node[T] {
	if len(s) == 0 {
		return nil
	}
	mid := len(s) >> 1
	return &Node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
}

// Root of the tree, nil if the tree is empty.
func (u *Tree[T]) Root() *Node[T] {
	return u.root
}

// insert v into the subtree rooted at cur and return the new subtree root.
// Recursive.
func insert[T constraints.Ordered](cur *Node[T], v T) (*Node[T], bool) {
	if cur == nil {
		return &Node[T]{v: v}, true
	}
	inserted := false
	if v < cur.v {
		cur.l, inserted = insert(cur.l, v)
	} else if v > cur.v {
		cur.r, inserted = insert(cur.r, v)
	}
	return cur, inserted
}

// Insert [BinarySearchTree.Insert]. Recursive.
// Time: O(D)
func (u *Tree[T]) Insert(v T) (inserted bool) {
	u.root, inserted = insert(u.root, v)
	return
}

// remove v from the subtree rooted at cur and return the new subtree root.
// A node with two children takes the value of its in-order successor, and
// the successor, which has no left child, is then removed from the right
// subtree. Recursive.
func remove[T constraints.Ordered](cur *Node[T], v T) (*Node[T], bool) {
	if cur == nil {
		return nil, false
	}
	deleted := false
	if v < cur.v {
		cur.l, deleted = remove(cur.l, v)
	} else if v > cur.v {
		cur.r, deleted = remove(cur.r, v)
	} else {
		switch {
		case cur.IsLeaf():
			return nil, true
		case cur.HasExactlyOneChild():
			return cur.TheOnlyChild(), true
		default:
			succ := cur.r
			for succ.l != nil {
				succ = succ.l
			}
			cur.v = succ.v
			cur.r, deleted = remove(cur.r, succ.v)
		}
	}
	return cur, deleted
}

// Delete [BinarySearchTree.Delete]. Recursive.
// Time: O(D)
func (u *Tree[T]) Delete(v T) (deleted bool) {
	u.root, deleted = remove(u.root, v)
	return
}

// Find [BinarySearchTree.Find]
// Time: O(D); Space: O(1)
func (u *Tree[T]) Find(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Has [BinarySearchTree.Has]
func (u *Tree[T]) Has(v T) bool {
	return u.Find(v) != nil
}

// Minimum [BinarySearchTree.Minimum]
// Time: O(D); Space: O(1)
func (u *Tree[T]) Minimum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum [BinarySearchTree.Maximum]
// Time: O(D); Space: O(1)
func (u *Tree[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// Size [BinarySearchTree.Size]
// Time: O(n)
func (u *Tree[T]) Size() (n int) {
	u.PreOrderFunc(func(*Node[T]) { n++ })
	return
}
