// Package virtuallist provides viewport-backed virtual scrolling: only
// the rows that fit on screen are rendered, so navigation cost does not
// grow with the size of the tree.
package virtuallist

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// List is implemented by components that render through the virtual
// list.
type List interface {
	// ItemCount returns the total number of rows.
	ItemCount() int

	// RenderItem renders the row at index into a single line.
	// isCursor marks the currently selected row.
	RenderItem(index int, isCursor bool, width int) string
}

// Renderer tracks the viewport and scroll offset for a List.
type Renderer struct {
	list         List
	viewport     viewport.Model
	cursor       int
	width        int
	height       int
	scrollOffset int
}

// New creates a renderer for the given list.
func New(list List) *Renderer {
	return &Renderer{list: list, viewport: viewport.New(0, 0)}
}

// SetSize updates the renderable area.
func (r *Renderer) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.viewport.Width = width
	r.viewport.Height = height
	r.ensureCursorVisible()
}

// SetCursor moves the cursor and scrolls it into view.
func (r *Renderer) SetCursor(cursor int) {
	r.cursor = cursor
	r.ensureCursorVisible()
}

// Cursor returns the current cursor row.
func (r *Renderer) Cursor() int { return r.cursor }

// ScrollOffset returns the index of the first visible row.
func (r *Renderer) ScrollOffset() int { return r.scrollOffset }

// Update forwards window sizing to the viewport. Keyboard input is
// deliberately not forwarded: the owner drives the cursor and scrolling
// happens in ensureCursorVisible, so forwarding keys would scroll twice.
func (r *Renderer) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		var cmd tea.Cmd
		r.viewport, cmd = r.viewport.Update(msg)
		return cmd
	}
	return nil
}

// View renders the visible rows.
func (r *Renderer) View() string {
	count := r.list.ItemCount()
	if count == 0 {
		return ""
	}

	visible := r.height
	if visible <= 0 {
		visible = 20
	}

	start := r.scrollOffset
	end := start + visible
	if end > count {
		end = count
	}
	// Keep a full window of rows when the list bottoms out.
	if end == count && end-start < visible {
		start = end - visible
		if start < 0 {
			start = 0
		}
		r.scrollOffset = start
	}
	if start < 0 {
		start = 0
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(r.list.RenderItem(i, i == r.cursor, r.width))
		if i < end-1 {
			b.WriteByte('\n')
		}
	}

	// The content already holds exactly the visible window, so the
	// viewport itself must not scroll.
	r.viewport.SetContent(b.String())
	r.viewport.YOffset = 0
	return r.viewport.View()
}

func (r *Renderer) ensureCursorVisible() {
	visible := r.height
	if visible <= 0 {
		return
	}

	if r.cursor < r.scrollOffset {
		r.scrollOffset = r.cursor
	}
	if r.cursor >= r.scrollOffset+visible {
		r.scrollOffset = r.cursor - visible + 1
	}

	maxOffset := r.list.ItemCount() - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if r.scrollOffset > maxOffset {
		r.scrollOffset = maxOffset
	}
	if r.scrollOffset < 0 {
		r.scrollOffset = 0
	}
}
