package rbtree

import (
	"math/rand"
	"testing"
	"unsafe"
)

// uutNode embeds Node first so a *Node pointing at the embedded field can
// be reinterpreted as the container, the same way the C world recovers a
// struct from an intrusive member.
type uutNode struct {
	Node
	n int
}

func uut(n *Node) *uutNode {
	return (*uutNode)(unsafe.Pointer(n))
}

func cmpUUT(a, b *Node) int {
	return uut(a).n - uut(b).n
}

func insertChecked(t *testing.T, tree *Tree, node *uutNode) {
	t.Helper()
	if err := tree.Validate(); err != nil {
		t.Fatalf("invalid before inserting %d: %v", node.n, err)
	}
	tree.Insert(&node.Node)
	if err := tree.Validate(); err != nil {
		t.Fatalf("invalid after inserting %d: %v", node.n, err)
	}
}

func collect(tree *Tree) []int {
	var keys []int
	tree.Traverse(func(n *Node, _ any) int {
		keys = append(keys, uut(n).n)
		return 0
	}, nil)
	return keys
}

func TestInsertSingle(t *testing.T) {
	tree := New(cmpUUT)
	node := &uutNode{n: 0}

	insertChecked(t, tree, node)

	if tree.root != &node.Node {
		t.Fatal("expected the inserted node at the root")
	}
	if tree.root.color != Black {
		t.Fatal("expected a black root")
	}
}

func TestInsertPair(t *testing.T) {
	tree := New(cmpUUT)
	a := &uutNode{n: 1}
	b := &uutNode{n: 2}

	insertChecked(t, tree, a)
	insertChecked(t, tree, b)

	got := collect(tree)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected [1 2], got %v", got)
	}
}

// Exercises every fixup case in one fixture: 1 becomes the root, 2 hangs
// red under it, 0 forces the red-uncle recolor, and 3 triggers the
// outer-child rotation.
func TestInsertFixupCases(t *testing.T) {
	tree := New(cmpUUT)
	for _, k := range []int{1, 2, 0, 3} {
		insertChecked(t, tree, &uutNode{n: k})
	}

	got := collect(tree)
	want := []int{0, 1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestInsertAscending(t *testing.T) {
	const size = 1024

	tree := New(cmpUUT)
	nodes := make([]uutNode, size)
	for i := range nodes {
		nodes[i].n = i
		tree.Insert(&nodes[i].Node)
	}
	if err := tree.Validate(); err != nil {
		t.Fatalf("invalid after %d ascending inserts: %v", size, err)
	}

	prev := -1
	rc := tree.Traverse(func(n *Node, scratch any) int {
		p := scratch.(*int)
		if uut(n).n < *p {
			t.Fatalf("out of order: %d after %d", uut(n).n, *p)
		}
		*p = uut(n).n
		return 0
	}, &prev)
	if rc != 0 {
		t.Fatalf("traverse returned %d", rc)
	}
	if prev != size-1 {
		t.Fatalf("expected to end at %d, got %d", size-1, prev)
	}

	// Height is bounded by 2*log2(n+1).
	if h := tree.Height(); h > 20 {
		t.Fatalf("height %d exceeds red-black bound", h)
	}
}

func TestInsertRandom(t *testing.T) {
	const size = 1024

	rng := rand.New(rand.NewSource(42))
	tree := New(cmpUUT)
	nodes := make([]uutNode, size)
	for i := range nodes {
		nodes[i].n = rng.Int()
		insertChecked(t, tree, &nodes[i])
	}

	// Every inserted node must be found again with an equal key, and the
	// traversal must visit each exactly once.
	for i := range nodes {
		key := uutNode{n: nodes[i].n}
		if tree.Search(&key.Node) == nil {
			t.Fatalf("node %d not found after insert", nodes[i].n)
		}
	}
	if got := tree.Len(); got != size {
		t.Fatalf("expected %d members, got %d", size, got)
	}
}

func TestSearchMiss(t *testing.T) {
	tree := New(cmpUUT)
	if tree.Search(&(&uutNode{n: 7}).Node) != nil {
		t.Fatal("expected nil on empty tree")
	}

	insertChecked(t, tree, &uutNode{n: 10})
	insertChecked(t, tree, &uutNode{n: 20})

	if tree.Search(&(&uutNode{n: 15}).Node) != nil {
		t.Fatal("expected nil for an absent key")
	}
}

func TestTraverseEarlyStop(t *testing.T) {
	tree := New(cmpUUT)
	for _, k := range []int{5, 3, 8, 1, 4} {
		insertChecked(t, tree, &uutNode{n: k})
	}

	visited := 0
	rc := tree.Traverse(func(n *Node, _ any) int {
		visited++
		if uut(n).n == 4 {
			return -7
		}
		return 0
	}, nil)

	if rc != -7 {
		t.Fatalf("expected stop code -7, got %d", rc)
	}
	if visited != 3 {
		t.Fatalf("expected the walk to stop after 3 visits, got %d", visited)
	}
}

func TestValidateIdempotent(t *testing.T) {
	tree := New(cmpUUT)
	for _, k := range []int{2, 1, 3} {
		tree.Insert(&(&uutNode{n: k}).Node)
	}

	if err := tree.Validate(); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if err := tree.Validate(); err != nil {
		t.Fatalf("second validation: %v", err)
	}
	if bh := tree.BlackHeight(); bh < 1 {
		t.Fatalf("black height %d", bh)
	}
}

func TestValidateDetectsRedRed(t *testing.T) {
	tree := New(cmpUUT)
	a := &uutNode{n: 1}
	b := &uutNode{n: 2}
	tree.Insert(&a.Node)
	tree.Insert(&b.Node)

	// Corrupt the tree by force: a red root with a red child.
	tree.root.color = Red
	if err := tree.Validate(); err == nil {
		t.Fatal("expected validation failure on a corrupted tree")
	}
}
