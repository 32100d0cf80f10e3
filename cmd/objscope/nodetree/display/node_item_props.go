package display

import "github.com/charmbracelet/lipgloss"

// ItemProps contains pre-computed display data for one tree row. It has
// no domain knowledge: which icon to use, which styles apply, and what
// the label text says are all decided in the adapter layer.
type ItemProps struct {
	Key    string // entry key, empty for an unlabeled root
	Text   string // formatted value label
	Icon   string // "▼" expanded, "▶" collapsed, "•" leaf
	Swatch string // color preview block, empty for non-colors
	Depth  int

	KeyStyle    lipgloss.Style
	ValueStyle  lipgloss.Style
	SwatchStyle lipgloss.Style
	IsSelected  bool
}
