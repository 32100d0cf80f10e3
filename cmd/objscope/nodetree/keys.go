package nodetree

import "github.com/charmbracelet/bubbles/key"

// Keys defines keyboard shortcuts for the node tree.
type Keys struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	Toggle      key.Binding
	ExpandAll   key.Binding
	CollapseAll key.Binding
	GoToParent  key.Binding

	CopyID    key.Binding
	CopyValue key.Binding
}

// DefaultKeys returns the standard tree bindings.
func DefaultKeys() Keys {
	return Keys{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "collapse")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "expand")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),

		Toggle:      key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space/enter", "toggle")),
		ExpandAll:   key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "expand all")),
		CollapseAll: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "collapse all")),
		GoToParent:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "parent")),

		CopyID:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy path")),
		CopyValue: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy value")),
	}
}
