package adapter

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/HazzazBinFaiz/objscope/cmd/objscope/nodetree/display"
	"github.com/HazzazBinFaiz/objscope/inspect"
)

// ItemSource is the domain data for one tree row. It is separate from
// nodetree.Item to keep the adapter free of a dependency cycle.
type ItemSource struct {
	Label       string
	Value       any
	Kind        inspect.Kind
	Depth       int
	HasChildren bool
	Expanded    bool
}

// ItemToDisplayProps converts a domain row into pure display props.
// All business logic lives here: label formatting per expansion state,
// icon selection, token-to-style mapping, and color swatches. The
// display layer below is completely dumb.
func ItemToDisplayProps(source ItemSource, isCursor bool) display.ItemProps {
	label := inspect.Format(source.Value, source.Kind, source.Expanded)

	props := display.ItemProps{
		Key:        source.Label,
		Text:       label.Text,
		Depth:      source.Depth,
		KeyStyle:   keyStyle,
		ValueStyle: styleForToken(label.Token),
		IsSelected: isCursor,
	}

	switch {
	case !source.HasChildren:
		props.Icon = leafIcon
	case source.Expanded:
		props.Icon = expandedIcon
	default:
		props.Icon = collapsedIcon
	}

	if source.Kind == inspect.KindColor {
		if c, ok := parseColor(label.Text); ok {
			props.Swatch = swatchBlock
			props.SwatchStyle = swatchStyle(c)
		}
	}

	return props
}

// parseColor resolves hex color literals to a concrete color for the
// swatch. rgb()/hsl() literals pass classification on prefix alone and
// may not be well formed, so they render without a swatch.
func parseColor(s string) (colorful.Color, bool) {
	if !strings.HasPrefix(s, "#") {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

const (
	expandedIcon  = "▼"
	collapsedIcon = "▶"
	leafIcon      = "•"
	swatchBlock   = "■"
)
