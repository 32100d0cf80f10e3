package inspect

// Node is one addressable position in an inspected value.
//
// The id is the parent id joined with the entry key by the id separator,
// rooted at the caller-supplied (or default) root id. Ids are unique
// within a tree and stable across rebuilds as long as the keys and root
// id are unchanged. Keys that themselves contain the separator can
// produce colliding ids; callers that persist open state by id should
// avoid such keys.
type Node struct {
	ID    string
	Label string // key under which the value was found; empty at the root unless supplied
	Value any    // the original value, held by reference, never cloned
	Kind  Kind
	// Children is nil both for leaves and for composites with zero
	// entries; only a composite with at least one entry carries a
	// non-nil slice. Renderers use that distinction for leaf/branch
	// display.
	Children []*Node
}

// Leaf reports whether the node has no children to expand into.
func (n *Node) Leaf() bool { return len(n.Children) == 0 }

// Walk visits n and its descendants in display order, calling fn with
// each node and its depth below n.
func (n *Node) Walk(fn func(n *Node, depth int)) {
	n.walk(0, fn)
}

func (n *Node) walk(depth int, fn func(*Node, int)) {
	fn(n, depth)
	for _, c := range n.Children {
		c.walk(depth+1, fn)
	}
}
