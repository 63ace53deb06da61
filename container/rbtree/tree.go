// Package rbtree implements an intrusive red-black self-balancing binary
// search tree. The tree links and colors nodes supplied by the caller; it
// never allocates or frees node storage. Callers embed Node inside their
// own record type and supply a comparator over node references.
//
// The tree maintains the usual five properties:
//
//  1. Each node is colored either red or black.
//  2. The root is black.
//  3. All leaves (absent children) are black.
//  4. If a node is red, then both its children are black.
//  5. Every path from a given node to any of its descendant leaves
//     contains the same number of black nodes.
//
// These bound the height to 2*log2(n+1), giving O(log n) search and
// insertion.
package rbtree

type Color uint8

const (
	Red Color = iota
	Black
)

// Node is the link record embedded in a caller's type. A node carries no
// parent reference; insertion records the downward path instead, so a
// rotation can never leave a stale back-link behind.
type Node struct {
	left  *Node
	right *Node
	color Color
}

// Compare orders two nodes. It returns a negative value if a < b, zero if
// they compare equal, and a positive value if a > b. The order must be
// total and stable for the tree's lifetime.
type Compare func(a, b *Node) int

// Visitor is called for each node during an in-order traversal. A non-zero
// return stops the walk and is propagated to the caller of Traverse.
type Visitor func(n *Node, scratch any) int

// maxDepth bounds the backtrace recorded during insertion. Property 5
// caps the height of a tree holding n nodes at 2*log2(n+1), so 128 levels
// cover any tree that fits in a 64-bit address space.
const maxDepth = 128

// Tree is the structure handle. It borrows the root; node storage belongs
// to the caller.
type Tree struct {
	root *Node
	cmp  Compare
}

// New returns an empty tree ordered by cmp.
func New(cmp Compare) *Tree {
	t := &Tree{}
	t.Init(cmp)
	return t
}

// Init prepares the tree for use with the given comparator. cmp must be
// non-nil.
func (t *Tree) Init(cmp Compare) {
	if cmp == nil {
		panic("rbtree: nil comparator")
	}
	t.root = nil
	t.cmp = cmp
}

// Search descends from the root comparing key against each node, going
// left when key is smaller and right when it is larger. It returns the
// first node comparing equal to key, or nil if none exists. key need not
// be a member of the tree.
func (t *Tree) Search(key *Node) *Node {
	cur := t.root
	for cur != nil {
		c := t.cmp(key, cur)
		if c < 0 {
			cur = cur.left
		} else if c > 0 {
			cur = cur.right
		} else {
			break
		}
	}
	return cur
}

// Insert links node into its ordered leaf position and restores the tree
// properties. node must not currently be a member of any tree. The
// operation performs no allocation: the ancestor context needed by the
// fixup is kept in two fixed-size stacks recorded during the descent, one
// holding the child slots traversed and one holding the sibling of each
// ancestor on the path (the "uncle" of the level below).
func (t *Tree) Insert(node *Node) {
	var backtrace [maxDepth]**Node
	var uncles [maxDepth]*Node

	node.color = Red
	node.left, node.right = nil, nil

	cur := 0
	backtrace[0] = &t.root
	var sibling *Node

	// Descend to the leaf slot, recording the path back to the root.
	for *backtrace[cur] != nil {
		parent := *backtrace[cur]

		cur++
		if cur >= maxDepth {
			panic("rbtree: depth bound exceeded")
		}
		uncles[cur] = sibling

		if t.cmp(node, parent) < 0 {
			backtrace[cur] = &parent.left
			sibling = parent.right
		} else {
			backtrace[cur] = &parent.right
			sibling = parent.left
		}
	}
	*backtrace[cur] = node

	// The new red leaf may violate property 2 or 4; walk the recorded
	// path back toward the root repairing as we go.
	var parent, gparent *Node
	for {
		node = *backtrace[cur]

		// Reached the root: recolor black and stop. A lone red root
		// turned black breaks nothing else.
		if t.root == node {
			node.color = Black
			return
		}

		parent = *backtrace[cur-1]

		// A red node under a black parent violates nothing.
		if parent.color == Black {
			return
		}

		// The parent is red, so it cannot be the root and the
		// grandparent must exist.
		gparent = *backtrace[cur-2]
		uncle := uncles[cur]

		if !isBlack(uncle) {
			// Red parent, red uncle: push the red conflict two
			// levels up and keep going. This is the only case
			// that iterates.
			parent.color = Black
			uncle.color = Black
			gparent.color = Red
			cur -= 2
			continue
		}

		break
	}

	// Red parent, black uncle. If node is an inner child, rotate it to
	// the outside first; node then takes the parent's place.
	if node == parent.right && parent == gparent.left {
		rotateLeft(backtrace[cur-1])
		parent = node
	} else if node == parent.left && parent == gparent.right {
		rotateRight(backtrace[cur-1])
		parent = node
	}

	// The backtrace below cur-2 is stale after the rotation above, but
	// nothing past this point reads it.

	// Outer child: swap the colors of parent and grandparent, then
	// rotate the grandparent out. Black-height seen from above is
	// unchanged, so the repair terminates here.
	parent.color = Black
	gparent.color = Red
	if parent == gparent.right {
		rotateLeft(backtrace[cur-2])
	} else {
		rotateRight(backtrace[cur-2])
	}
}

// Traverse walks the tree in ascending comparator order, invoking visit
// with each node and the caller's scratch value. A non-zero return from
// visit aborts the walk and is returned; a completed walk returns 0.
func (t *Tree) Traverse(visit Visitor, scratch any) int {
	return traverse(t.root, visit, scratch)
}

func traverse(n *Node, visit Visitor, scratch any) int {
	if n == nil {
		return 0
	}
	if rc := traverse(n.left, visit, scratch); rc != 0 {
		return rc
	}
	if rc := visit(n, scratch); rc != 0 {
		return rc
	}
	return traverse(n.right, visit, scratch)
}

// Len counts the tree's members by traversal.
func (t *Tree) Len() int {
	n := 0
	t.Traverse(func(*Node, any) int {
		n++
		return 0
	}, nil)
	return n
}

// Empty reports whether the tree holds no nodes.
func (t *Tree) Empty() bool { return t.root == nil }

// An absent child counts as black (property 3).
func isBlack(n *Node) bool {
	return n == nil || n.color == Black
}

// A rotation exchanges the node in slot with one of its children,
// reattaching the displaced subtree onto the node that moves down. Because
// nodes carry no parent links, the whole operation is a rewrite of slot
// plus the two nodes' own child references.

func rotateLeft(slot **Node) {
	parent := *slot
	*slot = parent.right
	parent.right = (*slot).left
	(*slot).left = parent
}

func rotateRight(slot **Node) {
	parent := *slot
	*slot = parent.left
	parent.left = (*slot).right
	(*slot).right = parent
}
