package nodedetail

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/HazzazBinFaiz/objscope/inspect"
	"github.com/HazzazBinFaiz/objscope/jsondoc"
)

func TestShowPopulatesView(t *testing.T) {
	m := New()
	m.SetSize(100, 40)
	m.Show("$ROOT.tags", inspect.KindArray, jsondoc.A{1, 2}, 2)

	if !m.IsVisible() {
		t.Fatal("expected modal visible after Show")
	}

	view := m.View()
	for _, want := range []string{"$ROOT.tags", "array", "comment", "Array (2 items)"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in detail view:\n%s", want, view)
		}
	}
}

func TestHiddenModalRendersNothing(t *testing.T) {
	m := New()
	if m.View() != "" {
		t.Error("expected empty view while hidden")
	}
}

func TestEscCloses(t *testing.T) {
	m := New()
	m.Show("$ROOT", inspect.KindNumber, 1, 0)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.IsVisible() {
		t.Error("expected esc to hide the modal")
	}
}
