package adapter

import (
	"testing"

	"github.com/HazzazBinFaiz/objscope/inspect"
	"github.com/HazzazBinFaiz/objscope/jsondoc"
)

func TestItemToDisplayProps_ExpandedComposite(t *testing.T) {
	source := ItemSource{
		Label:       "items",
		Value:       jsondoc.A{1, 2, 3},
		Kind:        inspect.KindArray,
		HasChildren: true,
		Expanded:    true,
	}

	props := ItemToDisplayProps(source, false)

	if props.Icon != "▼" {
		t.Errorf("expected expanded icon '▼', got %q", props.Icon)
	}
	if props.Text != "Array (3 items)" {
		t.Errorf("expected open array label, got %q", props.Text)
	}
}

func TestItemToDisplayProps_CollapsedComposite(t *testing.T) {
	source := ItemSource{
		Label:       "items",
		Value:       jsondoc.A{1},
		Kind:        inspect.KindArray,
		HasChildren: true,
		Expanded:    false,
	}

	props := ItemToDisplayProps(source, false)

	if props.Icon != "▶" {
		t.Errorf("expected collapsed icon '▶', got %q", props.Icon)
	}
	if props.Text != "[…]" {
		t.Errorf("expected closed array label, got %q", props.Text)
	}
}

func TestItemToDisplayProps_Leaf(t *testing.T) {
	source := ItemSource{
		Label: "name",
		Value: "demo",
		Kind:  inspect.KindString,
	}

	props := ItemToDisplayProps(source, false)

	if props.Icon != "•" {
		t.Errorf("expected leaf icon '•', got %q", props.Icon)
	}
	if props.Text != `"demo"` {
		t.Errorf("expected quoted string, got %q", props.Text)
	}
	if props.Swatch != "" {
		t.Errorf("expected no swatch for a plain string, got %q", props.Swatch)
	}
}

func TestItemToDisplayProps_HexColorGetsSwatch(t *testing.T) {
	source := ItemSource{
		Label: "tint",
		Value: "#ff0000",
		Kind:  inspect.KindColor,
	}

	props := ItemToDisplayProps(source, false)

	if props.Swatch != "■" {
		t.Errorf("expected swatch block for hex color, got %q", props.Swatch)
	}
	if props.Text != "#ff0000" {
		t.Errorf("color label must be the plain literal, got %q", props.Text)
	}
}

func TestItemToDisplayProps_MalformedColorNoSwatch(t *testing.T) {
	// classification is prefix-only, so this is a color without a
	// renderable swatch
	source := ItemSource{
		Label: "tint",
		Value: "#not-a-color",
		Kind:  inspect.KindColor,
	}

	props := ItemToDisplayProps(source, false)

	if props.Swatch != "" {
		t.Errorf("expected no swatch for malformed literal, got %q", props.Swatch)
	}
	if props.Text != "#not-a-color" {
		t.Errorf("label must still show the raw literal, got %q", props.Text)
	}
}

func TestItemToDisplayProps_CursorSelection(t *testing.T) {
	props := ItemToDisplayProps(ItemSource{Label: "x", Value: 1, Kind: inspect.KindNumber}, true)
	if !props.IsSelected {
		t.Error("expected IsSelected for the cursor row")
	}
}

func TestItemToDisplayProps_DepthPreserved(t *testing.T) {
	for _, depth := range []int{0, 1, 5} {
		props := ItemToDisplayProps(ItemSource{Label: "x", Value: 1, Kind: inspect.KindNumber, Depth: depth}, false)
		if props.Depth != depth {
			t.Errorf("depth %d not preserved, got %d", depth, props.Depth)
		}
	}
}
