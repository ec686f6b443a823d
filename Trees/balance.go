package Trees

// Height [BinarySearchTree.Height]. Recursive.
// Time: O(D+s) where s is the size of the subtree.
func (u *Tree[T]) Height(v T) (int, bool) {
	if n := u.Find(v); n != nil {
		return height(n), true
	}
	return 0, false
}

// Depth [BinarySearchTree.Depth]
// Time: O(D); Space: O(1)
func (u *Tree[T]) Depth(v T) (int, bool) {
	d := 0
	for cur := u.root; cur != nil; d++ {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return d, true
		}
	}
	return 0, false
}

// IsBalanced [BinarySearchTree.IsBalanced]
// Every node is checked in level order, each check measuring both of its
// subtrees.
// Time: O(n*D)
func (u *Tree[T]) IsBalanced() bool {
	if u.root == nil {
		return false
	}
	balanced := true
	u.LevelOrderFunc(func(n *Node[T]) {
		if !balanced {
			return
		}
		if d := height(n.l) - height(n.r); d > 1 || d < -1 {
			balanced = false
		}
	})
	return balanced
}

// Rebalance [BinarySearchTree.Rebalance]
// The values are taken in level order, sorted and built into a new shape;
// nodes of the old shape are released.
// Time: O(n log n)
func (u *Tree[T]) Rebalance() {
	u.root = build(sortedSet(u.LevelOrder()))
}
