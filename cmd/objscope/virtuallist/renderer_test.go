package virtuallist

import (
	"fmt"
	"strings"
	"testing"
)

type fakeList struct {
	count int
}

func (f *fakeList) ItemCount() int { return f.count }

func (f *fakeList) RenderItem(index int, isCursor bool, width int) string {
	marker := " "
	if isCursor {
		marker = ">"
	}
	return fmt.Sprintf("%s row-%d", marker, index)
}

func TestRendererShowsOnlyVisibleWindow(t *testing.T) {
	r := New(&fakeList{count: 100})
	r.SetSize(20, 5)

	view := r.View()

	if !strings.Contains(view, "row-0") {
		t.Errorf("expected first row in view:\n%s", view)
	}
	if strings.Contains(view, "row-10") {
		t.Errorf("expected rows past the window to be skipped:\n%s", view)
	}
}

func TestRendererScrollsCursorIntoView(t *testing.T) {
	r := New(&fakeList{count: 100})
	r.SetSize(20, 5)

	r.SetCursor(50)
	if r.ScrollOffset() != 46 {
		t.Errorf("expected scroll offset 46, got %d", r.ScrollOffset())
	}

	view := r.View()
	if !strings.Contains(view, "> row-50") {
		t.Errorf("expected cursor row in view:\n%s", view)
	}
}

func TestRendererScrollsBackUp(t *testing.T) {
	r := New(&fakeList{count: 100})
	r.SetSize(20, 5)

	r.SetCursor(50)
	r.SetCursor(3)
	if r.ScrollOffset() != 3 {
		t.Errorf("expected scroll offset 3, got %d", r.ScrollOffset())
	}
}

func TestRendererClampsAtBottom(t *testing.T) {
	r := New(&fakeList{count: 7})
	r.SetSize(20, 5)

	r.SetCursor(6)
	if r.ScrollOffset() != 2 {
		t.Errorf("expected scroll offset 2 at bottom, got %d", r.ScrollOffset())
	}

	view := r.View()
	if !strings.Contains(view, "row-6") || !strings.Contains(view, "row-2") {
		t.Errorf("expected a full window at the bottom:\n%s", view)
	}
}

func TestRendererEmptyList(t *testing.T) {
	r := New(&fakeList{count: 0})
	r.SetSize(20, 5)

	if r.View() != "" {
		t.Error("expected empty view for empty list")
	}
}
