package Trees

import (
	"github.com/g-m-twostay/go-bst/Queues"
	"golang.org/x/exp/constraints"
)

// Every order has two forms: XxxOrderFunc calls f on each node in traversal
// order, and XxxOrder collects the values through the same walk. On an empty
// tree the collected slice is empty and f is never called.
// The tree mustn't be modified by f.

func preOrder[T constraints.Ordered](n *Node[T], f func(*Node[T])) {
	if n == nil {
		return
	}
	f(n)
	preOrder(n.l, f)
	preOrder(n.r, f)
}

func inOrder[T constraints.Ordered](n *Node[T], f func(*Node[T])) {
	if n == nil {
		return
	}
	inOrder(n.l, f)
	f(n)
	inOrder(n.r, f)
}

func postOrder[T constraints.Ordered](n *Node[T], f func(*Node[T])) {
	if n == nil {
		return
	}
	postOrder(n.l, f)
	postOrder(n.r, f)
	f(n)
}

// levelOrder visits the nodes breadth first, left to right within a level.
// The front of the queue is read, its children are pushed, and only then is
// it popped and visited.
func levelOrder[T constraints.Ordered](n *Node[T], f func(*Node[T])) {
	if n == nil {
		return
	}
	q := Queues.MakeArrayQueue[*Node[T]](16)
	for q.Push(n); !q.Empty(); {
		front := q.Peek()
		if front.l != nil {
			q.Push(front.l)
		}
		if front.r != nil {
			q.Push(front.r)
		}
		if _, err := q.Pop(); err != nil {
			panic(err) // unreachable: q is not empty.
		}
		f(front)
	}
}

func collect[T constraints.Ordered](walk func(*Node[T], func(*Node[T])), n *Node[T]) []T {
	vs := make([]T, 0)
	walk(n, func(c *Node[T]) {
		vs = append(vs, c.v)
	})
	return vs
}

// PreOrderFunc visits node, left subtree, right subtree. Recursive.
func (u *Tree[T]) PreOrderFunc(f func(*Node[T])) {
	preOrder(u.root, f)
}

// PreOrder values; the first one is the root's. Recursive.
func (u *Tree[T]) PreOrder() []T {
	return collect(preOrder[T], u.root)
}

// InOrderFunc visits left subtree, node, right subtree. Recursive.
func (u *Tree[T]) InOrderFunc(f func(*Node[T])) {
	inOrder(u.root, f)
}

// InOrder values, always strictly ascending. Recursive.
func (u *Tree[T]) InOrder() []T {
	return collect(inOrder[T], u.root)
}

// PostOrderFunc visits left subtree, right subtree, node. Recursive.
func (u *Tree[T]) PostOrderFunc(f func(*Node[T])) {
	postOrder(u.root, f)
}

// PostOrder values. Recursive.
func (u *Tree[T]) PostOrder() []T {
	return collect(postOrder[T], u.root)
}

// LevelOrderFunc visits the nodes breadth first using a queue.
func (u *Tree[T]) LevelOrderFunc(f func(*Node[T])) {
	levelOrder(u.root, f)
}

// LevelOrder values, one level after another.
func (u *Tree[T]) LevelOrder() []T {
	return collect(levelOrder[T], u.root)
}
