package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// View renders the entire UI.
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	if m.detail.IsVisible() {
		// Recreate the overlay each render so it sees current state;
		// bubbletea's Update returns new models and stored pointers
		// would be stale.
		detailOverlay := overlay.New(
			&m.detail,
			NewMainViewModel(&m),
			overlay.Center,
			overlay.Center,
			0,
			0,
		)
		return detailOverlay.View()
	}

	return m.renderMain()
}

func (m Model) renderMain() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderTreePane(),
		m.renderStatus(),
	)
}

func (m Model) renderHeader() string {
	title := headerStyle.Render("objscope")
	source := pathStyle.Render("File: " + m.path)

	line := lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", source)

	current := ""
	if item := m.tree.CurrentItem(); item != nil {
		current = pathStyle.Render("Node: " + item.ID)
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, current)
}

func (m Model) renderTreePane() string {
	w, h := m.treeViewSize()
	return paneStyle.Width(w + 2).Height(h).Render(m.tree.View())
}

func (m Model) renderStatus() string {
	if m.inputMode == GoToPathMode {
		return inputStyle.Render("go to path: " + m.inputBuffer + "█")
	}

	count := statusCountStyle.Render(fmt.Sprintf("%d", m.tree.ItemCount()))
	status := fmt.Sprintf("%s nodes visible · ? help · q quit", count)
	if m.statusMessage != "" {
		status += " · " + m.statusMessage
	}
	return statusStyle.Render(status)
}

func (m Model) renderHelpOverlay() string {
	rows := []struct{ key, desc string }{
		{"↑/k ↓/j", "move cursor"},
		{"→/l ←/h", "expand / collapse"},
		{"space", "toggle node"},
		{"enter", "expand, or detail on a leaf"},
		{"i", "node detail"},
		{"E / C", "expand all / collapse all"},
		{"p", "go to parent"},
		{"g / G", "top / bottom"},
		{":", "go to node path"},
		{"y / c", "copy path / copy value"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	content := helpTitleStyle.Render("Keyboard Shortcuts")
	for _, r := range rows {
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			content,
			lipgloss.JoinHorizontal(lipgloss.Top, helpKeyStyle.Render(r.key), helpDescStyle.Render(r.desc)),
		)
	}

	box := helpBoxStyle.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
