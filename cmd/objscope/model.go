package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HazzazBinFaiz/objscope/cmd/objscope/nodedetail"
	"github.com/HazzazBinFaiz/objscope/cmd/objscope/nodetree"
	"github.com/HazzazBinFaiz/objscope/inspect"
)

// InputMode represents different input modes of the status line.
type InputMode int

const (
	NormalMode InputMode = iota
	GoToPathMode
)

// Model is the main application model.
type Model struct {
	path   string
	tree   nodetree.Model
	detail nodedetail.Model
	keys   KeyMap

	width  int
	height int

	inputMode   InputMode
	inputBuffer string

	showHelp      bool
	statusMessage string

	err error
}

// NewModel creates the TUI model over an already-built inspect tree.
func NewModel(path string, roots []*inspect.Node, open inspect.OpenSet) Model {
	return Model{
		path:   path,
		tree:   nodetree.NewModel(roots, open),
		detail: nodedetail.New(),
		keys:   DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// treeViewSize returns the inner size of the tree pane given the
// current window: header takes two lines, the status bar one, and the
// pane border and padding the rest.
func (m Model) treeViewSize() (int, int) {
	width := m.width - 4
	height := m.height - 5
	if width < 10 {
		width = 10
	}
	if height < 3 {
		height = 3
	}
	return width, height
}
