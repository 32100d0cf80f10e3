package nodetree

import "github.com/HazzazBinFaiz/objscope/cmd/objscope/logger"

// ExpandManager coordinates expand/collapse operations between the
// TreeState and the Navigator. Row indices shift whenever visibility
// changes, so every operation re-anchors the cursor on the node id it
// was on.
type ExpandManager struct {
	state *TreeState
	nav   *Navigator
}

// NewExpandManager creates an expand manager.
func NewExpandManager(state *TreeState, nav *Navigator) *ExpandManager {
	return &ExpandManager{state: state, nav: nav}
}

// Expand opens the current row. When it is already open, it collapses
// instead, so the bound key acts as a toggle.
func (em *ExpandManager) Expand() {
	item := em.state.GetItem(em.nav.Cursor())
	if item == nil || !item.HasChildren {
		return
	}
	if item.Expanded {
		em.Collapse()
		return
	}
	em.setOpenKeepingCursor(item.ID, true)
	logger.Debug("expanded", "id", item.ID)
}

// Collapse closes the current row. When the row is already closed the
// cursor moves to its parent, so repeated presses walk up the tree.
func (em *ExpandManager) Collapse() {
	item := em.state.GetItem(em.nav.Cursor())
	if item == nil {
		return
	}
	if !item.Expanded {
		em.MoveToParent()
		return
	}
	em.setOpenKeepingCursor(item.ID, false)
	logger.Debug("collapsed", "id", item.ID)
}

// Toggle flips the open state of the current row.
func (em *ExpandManager) Toggle() {
	item := em.state.GetItem(em.nav.Cursor())
	if item == nil || !item.HasChildren {
		return
	}
	em.setOpenKeepingCursor(item.ID, !item.Expanded)
}

// ExpandAll opens every composite node, keeping the cursor anchored.
func (em *ExpandManager) ExpandAll() {
	em.keepingCursor(func() { em.state.ExpandAll() })
}

// CollapseAll closes everything and moves the cursor to the root.
func (em *ExpandManager) CollapseAll() {
	em.state.CollapseAll()
	em.nav.Home()
}

// MoveToParent moves the cursor to the parent of the current row.
func (em *ExpandManager) MoveToParent() {
	item := em.state.GetItem(em.nav.Cursor())
	if item == nil || item.Parent == "" {
		return
	}
	if idx := em.state.IndexOf(item.Parent); idx >= 0 {
		em.nav.SetCursor(idx, em.state.ItemCount())
	}
}

func (em *ExpandManager) setOpenKeepingCursor(id string, open bool) {
	em.keepingCursor(func() { em.state.SetOpen(id, open) })
}

// keepingCursor re-anchors the cursor on the same node id across a
// visibility change, falling back to clamping when the node vanished.
func (em *ExpandManager) keepingCursor(change func()) {
	var anchor string
	if item := em.state.GetItem(em.nav.Cursor()); item != nil {
		anchor = item.ID
	}
	change()
	if anchor != "" {
		if idx := em.state.IndexOf(anchor); idx >= 0 {
			em.nav.SetCursor(idx, em.state.ItemCount())
			return
		}
	}
	em.nav.SetCursor(em.nav.Cursor(), em.state.ItemCount())
}
