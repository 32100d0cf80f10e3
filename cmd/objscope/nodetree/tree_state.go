package nodetree

import (
	"github.com/HazzazBinFaiz/objscope/cmd/objscope/logger"
	"github.com/HazzazBinFaiz/objscope/inspect"
)

// TreeState owns the built node tree and the open-state store, and
// derives the flattened list of visible rows from them. The tree itself
// is immutable; every expansion change just re-derives the row list.
type TreeState struct {
	roots []*inspect.Node
	open  inspect.OpenSet
	items []Item
	index map[string]*inspect.Node
}

// NewTreeState creates state over a built tree, seeded with an initial
// open set.
func NewTreeState(roots []*inspect.Node, open inspect.OpenSet) *TreeState {
	if open == nil {
		open = inspect.NewOpenSet()
	}
	ts := &TreeState{roots: roots, open: open, index: make(map[string]*inspect.Node)}
	for _, r := range roots {
		r.Walk(func(n *inspect.Node, _ int) { ts.index[n.ID] = n })
	}
	ts.refresh()
	return ts
}

// Items returns the currently visible rows.
func (ts *TreeState) Items() []Item { return ts.items }

// ItemCount returns the number of visible rows.
func (ts *TreeState) ItemCount() int { return len(ts.items) }

// GetItem returns the row at index, or nil when out of bounds.
func (ts *TreeState) GetItem(index int) *Item {
	if index >= 0 && index < len(ts.items) {
		return &ts.items[index]
	}
	return nil
}

// Node looks up the underlying tree node by id.
func (ts *TreeState) Node(id string) *inspect.Node { return ts.index[id] }

// IsOpen reports the open state for a node id.
func (ts *TreeState) IsOpen(id string) bool { return ts.open.IsOpen(id) }

// SetOpen records open state for a node id and re-derives the rows.
func (ts *TreeState) SetOpen(id string, open bool) {
	ts.open.Set(id, open)
	ts.refresh()
}

// ExpandAll opens every composite node with children.
func (ts *TreeState) ExpandAll() {
	for id, n := range ts.index {
		if !n.Leaf() {
			ts.open.Set(id, true)
		}
	}
	ts.refresh()
}

// CollapseAll closes everything except the roots.
func (ts *TreeState) CollapseAll() {
	for id := range ts.open {
		delete(ts.open, id)
	}
	ts.refresh()
}

// IndexOf returns the visible row index for a node id, or -1 when the
// node is hidden inside a collapsed ancestor.
func (ts *TreeState) IndexOf(id string) int {
	for i := range ts.items {
		if ts.items[i].ID == id {
			return i
		}
	}
	return -1
}

// RevealPath opens every ancestor of id so the node becomes visible,
// and returns its row index, or -1 when the id is unknown.
func (ts *TreeState) RevealPath(id string) int {
	if _, ok := ts.index[id]; !ok {
		return -1
	}
	for _, r := range ts.roots {
		ts.openAncestors(r, id)
	}
	ts.refresh()
	return ts.IndexOf(id)
}

func (ts *TreeState) openAncestors(n *inspect.Node, id string) bool {
	if n.ID == id {
		return true
	}
	for _, c := range n.Children {
		if ts.openAncestors(c, id) {
			ts.open.Set(n.ID, true)
			return true
		}
	}
	return false
}

// refresh re-derives the visible rows from the tree and the open set.
func (ts *TreeState) refresh() {
	ts.items = ts.items[:0]
	for _, r := range ts.roots {
		ts.flatten(r, 0, "")
	}
	logger.Debug("tree refreshed", "visible", len(ts.items), "open", len(ts.open))
}

func (ts *TreeState) flatten(n *inspect.Node, depth int, parent string) {
	expanded := !n.Leaf() && ts.open.IsOpen(n.ID)
	ts.items = append(ts.items, Item{
		ID:          n.ID,
		Label:       n.Label,
		Value:       n.Value,
		Kind:        n.Kind,
		Depth:       depth,
		HasChildren: !n.Leaf(),
		ChildCount:  len(n.Children),
		Expanded:    expanded,
		Parent:      parent,
	})
	if !expanded {
		return
	}
	for _, c := range n.Children {
		ts.flatten(c, depth+1, n.ID)
	}
}
