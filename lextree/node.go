package lextree

import "math/bits"

// mask must have a bit for every slot.
var _ [32 - alphabetSize]struct{}

// Node is one character position in the tree. Nodes are owned by their
// parent and are only handed out for reading.
type Node struct {
	ch       byte
	final    bool
	mask     uint32
	children []*Node
}

// Char returns the character the node represents. The root returns 0.
func (n *Node) Char() byte {
	return n.ch
}

// Final reports whether a stored word ends on this node.
func (n *Node) Final() bool {
	return n.final
}

// NumChildren returns the number of outgoing branches.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Children returns the child nodes in alphabetical order. The slice is a
// copy; the nodes are not.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Child returns the child for character c, or nil.
func (n *Node) Child(c byte) *Node {
	sym, ok := symbol(c)
	if !ok || n.mask&(1<<sym) == 0 {
		return nil
	}
	return n.children[n.rank(sym)]
}

// rank is the index in children of the slot sym: the number of
// present slots below it.
func (n *Node) rank(sym uint) int {
	return bits.OnesCount32(n.mask & (1<<sym - 1))
}

// addChild creates the child for c. The caller has checked that it is
// absent and that c is canonical.
func (n *Node) addChild(c byte) *Node {
	sym, _ := symbol(c)
	child := &Node{ch: c}

	i := n.rank(sym)
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	n.mask |= 1 << sym

	return child
}
