package Trees

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/google/btree"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 4000
	tAddValRange = 8000
)

func randInts(n, valRange int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = rg.Intn(valRange)
	}
	return a
}

// corrupt reports whether some node breaks the ordering of its subtree.
func corrupt[T int | string](n *Node[T], lo, hi *T) bool {
	if n == nil {
		return false
	}
	if (lo != nil && n.v <= *lo) || (hi != nil && n.v >= *hi) {
		return true
	}
	return corrupt(n.l, lo, &n.v) || corrupt(n.r, &n.v, hi)
}

func TestTree_New(t *testing.T) {
	a := randInts(tAddN, tAddValRange)
	orig := slices.Clone(a)
	tree := New(a...)
	if !slices.Equal(a, orig) {
		t.Fatal("New modified its input")
	}
	content := haxmap.New[int, struct{}]()
	for _, v := range a {
		content.Set(v, struct{}{})
	}
	if tree.Size() != int(content.Len()) {
		t.Errorf("tree size is %d, want %d", tree.Size(), content.Len())
	}
	content.ForEach(func(k int, _ struct{}) bool {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
		return true
	})
	s := tree.InOrder()
	if !slices.IsSorted(s) || len(slices.Compact(slices.Clone(s))) != len(s) {
		t.Errorf("in order is not strictly ascending")
	}
	if !tree.IsBalanced() {
		t.Errorf("built tree is not balanced")
	}
	if corrupt(tree.root, nil, nil) {
		t.Errorf("built tree is corrupt")
	}
}

func TestTree_NewEmpty(t *testing.T) {
	tree := New[int]()
	if tree.Root() != nil {
		t.Fatal("empty tree has a root")
	}
	if tree.Size() != 0 {
		t.Errorf("empty tree size is %d", tree.Size())
	}
	if tree.Delete(3) {
		t.Errorf("deleted from an empty tree")
	}
	if _, ok := tree.Minimum(); ok {
		t.Errorf("empty tree has a minimum")
	}
	if _, ok := tree.Maximum(); ok {
		t.Errorf("empty tree has a maximum")
	}
	var zero Tree[string]
	if !zero.Insert("a") || zero.Root().Value() != "a" {
		t.Errorf("zero tree didn't take its first value as root")
	}
}

func TestTree_NewDuplicates(t *testing.T) {
	tree := New(3, 1, 3, 2, 1, 2, 3)
	if got := tree.InOrder(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("in order is %v, want [1 2 3]", got)
	}
	if tree.Root().Value() != 2 {
		t.Errorf("root is %d, want 2", tree.Root().Value())
	}
}

func TestTree_FromSorted(t *testing.T) {
	content := make([]int, tAddN)
	for i := range content {
		content[i] = i * 3
	}
	tree := FromSorted(content, true)
	if !slices.Equal(tree.InOrder(), content) {
		t.Fatal("in order differs from the source slice")
	}
	if !tree.IsBalanced() {
		t.Errorf("tree from sorted slice is not balanced")
	}
	func() {
		defer func() {
			r := recover()
			var ise InvalidSliceError[int]
			if err, ok := r.(error); !ok || !errors.As(err, &ise) {
				t.Fatalf("recovered %v, want InvalidSliceError", r)
			}
			if ise.Index != 2 || ise.Prev != 5 || ise.Next != 5 {
				t.Errorf("wrong error %v", ise)
			}
		}()
		FromSorted([]int{1, 5, 5, 7}, true)
	}()
}

func TestTree_Insert(t *testing.T) {
	tree := New[int]()
	content := hashmap.New[int, struct{}]()
	for _, v := range randInts(tAddN, tAddValRange) {
		_, in := content.Get(v)
		if c := tree.Insert(v); c == in {
			t.Errorf("insert of %v returned %v, present %v", v, c, in)
		}
		content.Set(v, struct{}{})
	}
	if tree.Size() != content.Len() {
		t.Errorf("tree size is %d, want %d", tree.Size(), content.Len())
	}
	content.Range(func(k int, _ struct{}) bool {
		if n := tree.Find(k); n == nil || n.Value() != k {
			t.Errorf("tree does not have key %v", k)
		}
		return true
	})
	if corrupt(tree.root, nil, nil) {
		t.Errorf("tree is corrupt")
	}
}

func TestTree_InsertPresent(t *testing.T) {
	tree := New(1, 2, 3, 4, 5, 6, 7)
	pre, level := tree.PreOrder(), tree.LevelOrder()
	for _, v := range pre {
		if tree.Insert(v) {
			t.Errorf("inserted present value %v", v)
		}
	}
	if !slices.Equal(pre, tree.PreOrder()) || !slices.Equal(level, tree.LevelOrder()) {
		t.Errorf("inserting present values changed the shape")
	}
}

func TestTree_Delete(t *testing.T) {
	a := randInts(tAddN, tAddValRange)
	tree := New(a...)
	oracle := redblacktree.NewWith(utils.IntComparator)
	for _, v := range a {
		oracle.Put(v, nil)
	}
	for i := range rg.Intn(len(a)) {
		_, in := oracle.Get(a[i])
		if b := tree.Delete(a[i]); b != in {
			t.Errorf("delete of %v returned %v, present %v", a[i], b, in)
		}
		if tree.Delete(a[i]) {
			t.Errorf("can delete a second time key %v", a[i])
		}
		if tree.Find(a[i]) != nil {
			t.Errorf("key %v found after delete", a[i])
		}
		oracle.Remove(a[i])
	}
	s := tree.InOrder()
	if len(s) != oracle.Size() {
		t.Fatalf("tree size is %d, want %d", len(s), oracle.Size())
	}
	for i, k := range oracle.Keys() {
		if s[i] != k.(int) {
			t.Fatalf("wrong value at index %d: %d, want %d", i, s[i], k)
		}
	}
	if corrupt(tree.root, nil, nil) {
		t.Errorf("tree is corrupt")
	}
}

func TestTree_DeleteAbsent(t *testing.T) {
	tree := New(2, 4, 6, 8)
	pre := tree.PreOrder()
	for _, v := range []int{1, 3, 5, 7, 9} {
		if tree.Delete(v) {
			t.Errorf("deleted absent value %v", v)
		}
	}
	if !slices.Equal(pre, tree.PreOrder()) {
		t.Errorf("deleting absent values changed the tree")
	}
}

func TestTree_DeleteAll(t *testing.T) {
	a := randInts(tAddN, tAddValRange)
	tree := New(a...)
	rg.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
	for _, v := range a {
		tree.Delete(v)
	}
	if tree.Root() != nil {
		t.Errorf("tree not empty after deleting everything: %v", tree.InOrder())
	}
	if len(tree.InOrder()) != 0 {
		t.Errorf("in order of emptied tree is not empty")
	}
}

func TestTree_DeleteCases(t *testing.T) {
	tree := New(1, 2, 3, 4, 5, 6, 7)
	if !tree.Delete(4) {
		t.Fatal("failed to delete root")
	}
	if r := tree.Root().Value(); r != 5 {
		t.Errorf("root is %d, want 5", r)
	}
	if tree.Root().Right().Left() != nil {
		t.Errorf("successor's old leaf still present")
	}
	if got := tree.LevelOrder(); !slices.Equal(got, []int{5, 2, 6, 1, 3, 7}) {
		t.Errorf("level order is %v", got)
	}
	// 6 now has only a right child.
	if !tree.Find(6).HasExactlyOneChild() {
		t.Fatal("6 should have one child")
	}
	tree.Delete(6)
	if got := tree.LevelOrder(); !slices.Equal(got, []int{5, 2, 7, 1, 3}) {
		t.Errorf("level order after single child delete is %v", got)
	}
	tree.Delete(1)
	if got := tree.PreOrder(); !slices.Equal(got, []int{5, 2, 3, 7}) {
		t.Errorf("pre order after leaf delete is %v", got)
	}
	for _, v := range []int{5, 2, 3, 7} {
		tree.Delete(v)
	}
	if tree.Root() != nil {
		t.Errorf("tree not empty")
	}
}

func TestTree_MinMax(t *testing.T) {
	a := randInts(tAddN, tAddValRange)
	tree := New[int]()
	oracle := btree.NewOrderedG[int](4)
	for i, v := range a {
		tree.Insert(v)
		oracle.ReplaceOrInsert(v)
		if i%7 == 0 {
			tree.Delete(a[i/2])
			oracle.Delete(a[i/2])
		}
		gm, gok := tree.Minimum()
		wm, wok := oracle.Min()
		if gm != wm || gok != wok {
			t.Fatalf("minimum is %d %v, want %d %v", gm, gok, wm, wok)
		}
		gm, gok = tree.Maximum()
		wm, wok = oracle.Max()
		if gm != wm || gok != wok {
			t.Fatalf("maximum is %d %v, want %d %v", gm, gok, wm, wok)
		}
	}
	for _, v := range randInts(tAddN, tAddValRange*2) {
		if tree.Has(v) != oracle.Has(v) {
			t.Fatalf("has %d is %v", v, tree.Has(v))
		}
	}
}

func TestNode_Classification(t *testing.T) {
	tree := New(1, 2, 3)
	tree.Insert(4)
	root := tree.Root()
	if !root.HasTwoChildren() || root.IsLeaf() || root.HasExactlyOneChild() {
		t.Errorf("root 2 misclassified")
	}
	three := tree.Find(3)
	if !three.HasExactlyOneChild() || three.TheOnlyChild().Value() != 4 {
		t.Errorf("3 misclassified")
	}
	one := tree.Find(1)
	if !one.IsLeaf() || one.HasTwoChildren() {
		t.Errorf("1 misclassified")
	}
	if root.Compare(one) != 1 || one.Compare(three) != -1 || three.Compare(tree.Find(3)) != 0 {
		t.Errorf("wrong node comparison")
	}
}

func TestTree_String(t *testing.T) {
	want := "│       ┌── 7\n" +
		"│   ┌── 6\n" +
		"│   │   └── 5\n" +
		"└── 4\n" +
		"    │   ┌── 3\n" +
		"    └── 2\n" +
		"        └── 1\n"
	if got := New(7, 6, 5, 4, 3, 2, 1).String(); got != want {
		t.Errorf("printed\n%s\nwant\n%s", got, want)
	}
	if got := New[int]().String(); got != "" {
		t.Errorf("empty tree printed %q", got)
	}
}
