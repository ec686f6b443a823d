package Trees

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// Fprint writes the tree sideways to w, one node per line: the right
// subtree above its parent and the left subtree below it. Nothing is written
// for an empty tree. Recursive.
//
//	│       ┌── 7
//	│   ┌── 6
//	│   │   └── 5
//	└── 4
//	    │   ┌── 3
//	    └── 2
//	        └── 1
func (u *Tree[T]) Fprint(w io.Writer) error {
	if u.root == nil {
		return nil
	}
	p := printer[T]{w: w}
	p.print(u.root, "", true)
	return p.err
}

// String returns the Fprint form of the tree.
func (u *Tree[T]) String() string {
	var sb strings.Builder
	_ = u.Fprint(&sb)
	return sb.String()
}

type printer[T constraints.Ordered] struct {
	w   io.Writer
	err error
}

func (p *printer[T]) print(n *Node[T], prefix string, isLeft bool) {
	if p.err != nil {
		return
	}
	if n.r != nil {
		p.print(n.r, prefix+pick(isLeft, "│   ", "    "), false)
	}
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, "%s%s%v\n", prefix, pick(isLeft, "└── ", "┌── "), n.v)
	}
	if n.l != nil {
		p.print(n.l, prefix+pick(isLeft, "    ", "│   "), true)
	}
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
