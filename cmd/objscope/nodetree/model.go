package nodetree

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HazzazBinFaiz/objscope/cmd/objscope/logger"
	"github.com/HazzazBinFaiz/objscope/cmd/objscope/nodetree/adapter"
	"github.com/HazzazBinFaiz/objscope/cmd/objscope/nodetree/display"
	"github.com/HazzazBinFaiz/objscope/cmd/objscope/virtuallist"
	"github.com/HazzazBinFaiz/objscope/inspect"
)

// Model is the tree widget: it renders the flattened rows of an inspect
// tree and owns cursor movement and expand/collapse state. Width and
// height are supplied by the host; the widget never measures anything
// itself.
type Model struct {
	state    *TreeState
	nav      *Navigator
	expander *ExpandManager
	renderer *virtuallist.Renderer
	keys     Keys

	width  int
	height int
}

// rowList adapts TreeState rows for the virtual list. It references the
// state directly so the renderer never sees a stale model copy.
type rowList struct {
	state *TreeState
}

func (l rowList) ItemCount() int { return l.state.ItemCount() }

func (l rowList) RenderItem(index int, isCursor bool, width int) string {
	item := l.state.GetItem(index)
	if item == nil {
		return ""
	}
	props := adapter.ItemToDisplayProps(adapter.ItemSource{
		Label:       item.Label,
		Value:       item.Value,
		Kind:        item.Kind,
		Depth:       item.Depth,
		HasChildren: item.HasChildren,
		Expanded:    item.Expanded,
	}, isCursor)
	return display.RenderItem(props, width)
}

// NewModel creates a tree widget over a built inspect tree, seeding
// expansion from the supplied open set.
func NewModel(roots []*inspect.Node, open inspect.OpenSet) Model {
	state := NewTreeState(roots, open)
	nav := NewNavigator()
	return Model{
		state:    state,
		nav:      nav,
		expander: NewExpandManager(state, nav),
		renderer: virtuallist.New(rowList{state: state}),
		keys:     DefaultKeys(),
	}
}

// SetSize updates the widget's renderable area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.renderer.SetSize(width, height)
}

// CurrentItem returns the row under the cursor, or nil when the tree is
// empty.
func (m *Model) CurrentItem() *Item {
	return m.state.GetItem(m.nav.Cursor())
}

// ItemCount returns the number of visible rows.
func (m *Model) ItemCount() int { return m.state.ItemCount() }

// State exposes the tree state for the host's header and goto-path
// handling.
func (m *Model) State() *TreeState { return m.state }

// GoTo reveals the node with the given id and moves the cursor onto it.
func (m *Model) GoTo(id string) bool {
	idx := m.state.RevealPath(id)
	if idx < 0 {
		return false
	}
	m.nav.SetCursor(idx, m.state.ItemCount())
	return true
}

// Update handles tree key input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	count := m.state.ItemCount()
	page := m.height
	if page <= 0 {
		page = 10
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.nav.Move(-1, count)
	case key.Matches(keyMsg, m.keys.Down):
		m.nav.Move(1, count)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.nav.Move(-page, count)
	case key.Matches(keyMsg, m.keys.PageDown):
		m.nav.Move(page, count)
	case key.Matches(keyMsg, m.keys.Home):
		m.nav.Home()
	case key.Matches(keyMsg, m.keys.End):
		m.nav.End(count)
	case key.Matches(keyMsg, m.keys.Right):
		m.expander.Expand()
	case key.Matches(keyMsg, m.keys.Left):
		m.expander.Collapse()
	case key.Matches(keyMsg, m.keys.Toggle):
		m.expander.Toggle()
	case key.Matches(keyMsg, m.keys.ExpandAll):
		m.expander.ExpandAll()
	case key.Matches(keyMsg, m.keys.CollapseAll):
		m.expander.CollapseAll()
	case key.Matches(keyMsg, m.keys.GoToParent):
		m.expander.MoveToParent()
	case key.Matches(keyMsg, m.keys.CopyID):
		return m, m.copyID()
	case key.Matches(keyMsg, m.keys.CopyValue):
		return m, m.copyValue()
	}

	return m, nil
}

// View renders the visible window of rows.
func (m Model) View() string {
	m.renderer.SetCursor(m.nav.Cursor())
	return m.renderer.View()
}

func (m Model) copyID() tea.Cmd {
	item := m.CurrentItem()
	if item == nil {
		return nil
	}
	return func() tea.Msg {
		if err := clipboard.WriteAll(item.ID); err != nil {
			logger.Error("clipboard write failed", "error", err)
			return StatusMsg{Text: "copy failed: " + err.Error()}
		}
		return StatusMsg{Text: "copied " + item.ID}
	}
}

func (m Model) copyValue() tea.Cmd {
	item := m.CurrentItem()
	if item == nil {
		return nil
	}
	text := inspect.Format(item.Value, item.Kind, true).Text
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			logger.Error("clipboard write failed", "error", err)
			return StatusMsg{Text: "copy failed: " + err.Error()}
		}
		return StatusMsg{Text: "copied value"}
	}
}
