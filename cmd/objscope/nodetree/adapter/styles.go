package adapter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/HazzazBinFaiz/objscope/inspect"
)

var (
	keyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00D7FF"))

	stringStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	numberStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	booleanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF"))
	nullStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Italic(true)
	functionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
	symbolStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4B4B"))
	commentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Italic(true)
	defaultStyle   = lipgloss.NewStyle()
)

// styleForToken maps a display-token category to its style. The token
// is styling input only; it never feeds back into classification or
// label text.
func styleForToken(t inspect.Token) lipgloss.Style {
	switch t {
	case inspect.Token(inspect.KindString):
		return stringStyle
	case inspect.Token(inspect.KindNumber), inspect.Token(inspect.KindBigint):
		return numberStyle
	case inspect.Token(inspect.KindBoolean):
		return booleanStyle
	case inspect.Token(inspect.KindNull), inspect.Token(inspect.KindUndefined):
		return nullStyle
	case inspect.Token(inspect.KindFunction):
		return functionStyle
	case inspect.Token(inspect.KindSymbol):
		return symbolStyle
	case inspect.Token("comment"):
		return commentStyle
	default:
		return defaultStyle
	}
}

// swatchStyle colors the swatch block with the literal's own color.
func swatchStyle(c colorful.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}
