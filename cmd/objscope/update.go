package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HazzazBinFaiz/objscope/cmd/objscope/logger"
	"github.com/HazzazBinFaiz/objscope/cmd/objscope/nodedetail"
	"github.com/HazzazBinFaiz/objscope/cmd/objscope/nodetree"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w, h := m.treeViewSize()
		m.tree.SetSize(w, h)
		m.detail.SetSize(msg.Width, msg.Height)
		logger.Debug("window resized", "width", msg.Width, "height", msg.Height)
		return m, nil

	case nodetree.StatusMsg:
		m.statusMessage = msg.Text
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modal input wins while visible.
	if m.detail.IsVisible() {
		updated, cmd := m.detail.Update(msg)
		m.detail = updated.(nodedetail.Model)
		return m, cmd
	}

	if m.inputMode == GoToPathMode {
		return m.handleGoToInput(msg)
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.GoToPath):
		m.inputMode = GoToPathMode
		m.inputBuffer = ""
		return m, nil
	case key.Matches(msg, m.keys.Detail):
		if item := m.tree.CurrentItem(); item != nil {
			if item.HasChildren {
				// Enter toggles composites; detail is for leaves.
				var cmd tea.Cmd
				m.tree, cmd = m.tree.Update(msg)
				return m, cmd
			}
			m.detail.Show(item.ID, item.Kind, item.Value, item.ChildCount)
		}
		return m, nil
	case key.Matches(msg, m.keys.Inspect):
		if item := m.tree.CurrentItem(); item != nil {
			m.detail.Show(item.ID, item.Kind, item.Value, item.ChildCount)
		}
		return m, nil
	}

	m.statusMessage = ""
	var cmd tea.Cmd
	m.tree, cmd = m.tree.Update(msg)
	return m, cmd
}

func (m Model) handleGoToInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.inputMode = NormalMode
		m.inputBuffer = ""
	case tea.KeyEnter:
		id := strings.TrimSpace(m.inputBuffer)
		m.inputMode = NormalMode
		m.inputBuffer = ""
		if id == "" {
			return m, nil
		}
		if m.tree.GoTo(id) {
			m.statusMessage = "jumped to " + id
		} else {
			m.statusMessage = "no node " + id
		}
	case tea.KeyBackspace:
		if len(m.inputBuffer) > 0 {
			m.inputBuffer = m.inputBuffer[:len(m.inputBuffer)-1]
		}
	case tea.KeyRunes, tea.KeySpace:
		m.inputBuffer += msg.String()
	}
	return m, nil
}
