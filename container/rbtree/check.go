package rbtree

import "errors"

// Debug scaffolding: a recursive validator of the tree properties. Not
// part of the production surface, but every mutation test should call
// Validate around each insertion.

var (
	errBadColor    = errors.New("rbtree: node color is neither red nor black")
	errRedRoot     = errors.New("rbtree: root is red")
	errRedRed      = errors.New("rbtree: red node has a red child")
	errBlackHeight = errors.New("rbtree: unequal black counts on downward paths")
)

// Validate checks properties 1-5 for the whole tree and returns nil when
// they all hold. It reads no state besides the node links, so running it
// repeatedly without mutation always yields the same result.
func (t *Tree) Validate() error {
	if err := checkColors(t.root); err != nil {
		return err
	}
	if !isBlack(t.root) {
		return errRedRoot
	}
	if err := checkRedNodes(t.root); err != nil {
		return err
	}
	if blackDepth(t.root) < 0 {
		return errBlackHeight
	}
	return nil
}

// BlackHeight returns the number of black nodes on any root-to-leaf path,
// or -1 if property 5 is violated. The empty tree has black-height 1 (the
// absent root position is a black leaf).
func (t *Tree) BlackHeight() int {
	return blackDepth(t.root)
}

// Height returns the length in nodes of the longest root-to-leaf path.
func (t *Tree) Height() int {
	return height(t.root)
}

func checkColors(n *Node) error {
	if n == nil {
		return nil
	}
	if n.color != Red && n.color != Black {
		return errBadColor
	}
	if err := checkColors(n.left); err != nil {
		return err
	}
	return checkColors(n.right)
}

func checkRedNodes(n *Node) error {
	if n == nil {
		return nil
	}
	if n.color == Red && (!isBlack(n.left) || !isBlack(n.right)) {
		return errRedRed
	}
	if err := checkRedNodes(n.left); err != nil {
		return err
	}
	return checkRedNodes(n.right)
}

// blackDepth returns the black count from n down to any leaf, or -1 if
// two subtrees disagree.
func blackDepth(n *Node) int {
	if n == nil {
		return 1
	}

	left := blackDepth(n.left)
	right := blackDepth(n.right)

	if left == -1 || left != right {
		return -1
	}
	if isBlack(n) {
		return left + 1
	}
	return left
}

func height(n *Node) int {
	if n == nil {
		return 0
	}
	l := height(n.left)
	r := height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}
