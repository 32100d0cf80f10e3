package display

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// RenderItem is a pure rendering function: it lays out pre-computed
// props into a single line of at most width cells. No domain decisions
// are made here.
func RenderItem(props ItemProps, width int) string {
	indent := strings.Repeat("  ", props.Depth)

	key := props.Key
	if key != "" {
		key += ": "
	}

	// Fixed cells: indent + icon + space [+ swatch + space]
	fixed := runewidth.StringWidth(indent) + runewidth.StringWidth(props.Icon) + 1
	if props.Swatch != "" {
		fixed += runewidth.StringWidth(props.Swatch) + 1
	}
	fixed += runewidth.StringWidth(key)

	text := props.Text
	if avail := width - fixed; avail > 0 && runewidth.StringWidth(text) > avail {
		text = runewidth.Truncate(text, avail, "…")
	}

	var b strings.Builder
	b.WriteString(indent)
	b.WriteString(props.Icon)
	b.WriteByte(' ')
	if key != "" {
		b.WriteString(props.KeyStyle.Render(key))
	}
	if props.Swatch != "" {
		b.WriteString(props.SwatchStyle.Render(props.Swatch))
		b.WriteByte(' ')
	}
	b.WriteString(props.ValueStyle.Render(text))

	line := b.String()
	if props.IsSelected {
		return selectedStyle.Render(line)
	}
	return line
}
