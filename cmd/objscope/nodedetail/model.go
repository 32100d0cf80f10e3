// Package nodedetail shows a modal with the full detail of one node:
// its id path, kind, token category, and untruncated label text.
package nodedetail

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/HazzazBinFaiz/objscope/inspect"
)

// Model is the detail modal. It implements tea.Model so it can be
// composed as an overlay foreground.
type Model struct {
	visible bool

	id         string
	kind       inspect.Kind
	label      inspect.Label
	childCount int

	width  int
	height int

	status string
}

// New creates a hidden detail modal.
func New() Model { return Model{} }

// Show populates the modal from a node and makes it visible.
func (m *Model) Show(id string, kind inspect.Kind, value any, childCount int) {
	m.id = id
	m.kind = kind
	m.label = inspect.Format(value, kind, true)
	m.childCount = childCount
	m.status = ""
	m.visible = true
}

// Hide dismisses the modal.
func (m *Model) Hide() { m.visible = false }

// IsVisible reports whether the modal is showing.
func (m *Model) IsVisible() bool { return m.visible }

// SetSize records the host window size for centering and wrapping.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "enter":
		m.visible = false
	case "c":
		if err := clipboard.WriteAll(m.label.Text); err != nil {
			m.status = "copy failed: " + err.Error()
		} else {
			m.status = "value copied"
		}
	case "y":
		if err := clipboard.WriteAll(m.id); err != nil {
			m.status = "copy failed: " + err.Error()
		} else {
			m.status = "path copied"
		}
	}
	return m, nil
}

// View renders the modal box. The overlay package takes care of
// compositing it over the main view.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	boxWidth := m.width / 2
	if boxWidth < 40 {
		boxWidth = 40
	}

	rows := []string{
		titleStyle.Render("Node Detail"),
		fieldStyle.Render("Path:  ") + valueStyle.Render(m.id),
		fieldStyle.Render("Kind:  ") + valueStyle.Render(m.kind.String()),
		fieldStyle.Render("Token: ") + valueStyle.Render(string(m.kind.Token())),
	}
	if m.kind.Composite() {
		rows = append(rows, fieldStyle.Render("Size:  ")+valueStyle.Render(fmt.Sprintf("%d", m.childCount)))
	}
	rows = append(rows,
		"",
		textStyle.Width(boxWidth-4).Render(m.label.Text),
		"",
		hintStyle.Render("c copy value · y copy path · esc close"),
	)
	if m.status != "" {
		rows = append(rows, statusStyle.Render(m.status))
	}

	return boxStyle.Width(boxWidth).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			MarginBottom(1)

	fieldStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00D7FF"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))
)
