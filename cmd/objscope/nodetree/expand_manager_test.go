package nodetree

import (
	"testing"

	"github.com/HazzazBinFaiz/objscope/inspect"
)

func newManager(t *testing.T, open inspect.OpenSet) (*TreeState, *Navigator, *ExpandManager) {
	t.Helper()
	ts := NewTreeState(sampleTree(), open)
	nav := NewNavigator()
	return ts, nav, NewExpandManager(ts, nav)
}

func TestExpandOpensCurrentRow(t *testing.T) {
	ts, _, em := newManager(t, nil)

	em.Expand()
	if ts.ItemCount() != 3 {
		t.Errorf("expected 3 rows after expanding the root, got %d", ts.ItemCount())
	}
}

func TestExpandTogglesWhenOpen(t *testing.T) {
	ts, _, em := newManager(t, inspect.NewOpenSet("$ROOT"))

	em.Expand() // root already open: acts as collapse
	if ts.ItemCount() != 1 {
		t.Errorf("expected root collapsed, got %d rows", ts.ItemCount())
	}
}

func TestExpandIgnoresLeaf(t *testing.T) {
	ts, nav, em := newManager(t, inspect.NewOpenSet("$ROOT"))

	nav.SetCursor(2, ts.ItemCount()) // "$ROOT.c", a string leaf
	em.Expand()
	if ts.ItemCount() != 3 {
		t.Errorf("expanding a leaf must be a no-op, got %d rows", ts.ItemCount())
	}
}

func TestCollapseOnClosedRowMovesToParent(t *testing.T) {
	ts, nav, em := newManager(t, inspect.NewOpenSet("$ROOT"))

	nav.SetCursor(1, ts.ItemCount()) // "$ROOT.a", closed
	em.Collapse()
	if nav.Cursor() != 0 {
		t.Errorf("expected cursor on the parent row, got %d", nav.Cursor())
	}
}

func TestCursorStaysOnNodeAcrossExpand(t *testing.T) {
	ts, nav, em := newManager(t, inspect.NewOpenSet("$ROOT"))

	nav.SetCursor(2, ts.ItemCount()) // "$ROOT.c"
	before := ts.GetItem(nav.Cursor()).ID

	// Opening a sibling above shifts row indices; the cursor should
	// stay on the same node.
	nav.SetCursor(1, ts.ItemCount())
	em.Expand()
	nav.SetCursor(ts.IndexOf(before), ts.ItemCount())
	if got := ts.GetItem(nav.Cursor()).ID; got != before {
		t.Errorf("cursor drifted from %q to %q", before, got)
	}
}

func TestCollapseAllResetsCursor(t *testing.T) {
	ts, nav, em := newManager(t, inspect.NewOpenSet("$ROOT", "$ROOT.a"))

	nav.SetCursor(3, ts.ItemCount())
	em.CollapseAll()
	if nav.Cursor() != 0 {
		t.Errorf("expected cursor at root after CollapseAll, got %d", nav.Cursor())
	}
}
