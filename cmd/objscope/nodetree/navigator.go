package nodetree

// Navigator tracks the cursor position over the visible rows.
type Navigator struct {
	cursor int
}

// NewNavigator creates a navigator with the cursor on the first row.
func NewNavigator() *Navigator { return &Navigator{} }

// Cursor returns the current row index.
func (n *Navigator) Cursor() int { return n.cursor }

// SetCursor moves the cursor, clamped to [0, count).
func (n *Navigator) SetCursor(cursor, count int) {
	if cursor >= count {
		cursor = count - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	n.cursor = cursor
}

// Move shifts the cursor by delta, clamped to the row range.
func (n *Navigator) Move(delta, count int) {
	n.SetCursor(n.cursor+delta, count)
}

// Home moves the cursor to the first row.
func (n *Navigator) Home() { n.cursor = 0 }

// End moves the cursor to the last row.
func (n *Navigator) End(count int) {
	n.SetCursor(count-1, count)
}
