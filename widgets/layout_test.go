package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func TestHStackFixedAndFlexibleWidths(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Widths: []int{5}, Gap: 1}
	out := h.Render(20, 1)
	if got := ansi.StringWidth(out); got != 20 {
		t.Fatalf("row width = %d, want 20", got)
	}
	if idx := strings.Index(out, "B"); idx != 6 {
		t.Fatalf("second column should start after 5 cols + gap, got %d in %q", idx, out)
	}
}

func TestHStackSkipsZeroWidthColumn(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Widths: []int{30}}
	out := h.Render(20, 1)
	if strings.Contains(out, "B") {
		t.Fatalf("flexible column should get no room when the fixed one fills the row: %q", out)
	}
}

func TestVStackHeights(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"top"}, fixedWidget{"bottom"}}, Heights: []int{2}}
	out := v.Render(20, 6)
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("line count = %d, want 6", len(lines))
	}
	if lines[0] != "top" || lines[2] != "bottom" {
		t.Fatalf("unexpected layout: %q", lines)
	}
}

func TestSplitSizes(t *testing.T) {
	got := splitSizes(10, 3, []int{4})
	if got[0] != 4 || got[1]+got[2] != 6 || got[1] != 3 {
		t.Fatalf("splitSizes = %v", got)
	}
	got = splitSizes(7, 2, nil)
	if got[0] != 4 || got[1] != 3 {
		t.Fatalf("splitSizes even = %v", got)
	}
}

func TestTextClipsToBox(t *testing.T) {
	out := Text("abcdef\nsecond\nthird").Render(3, 2)
	if out != "abc\nsec" {
		t.Fatalf("Text.Render = %q", out)
	}
}

func TestPaneSize(t *testing.T) {
	p := Pane{Title: "Navigation", Badge: "42%", Content: "one\ntwo"}
	out := p.Render(24, 6)
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("line count = %d, want 6", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 24 {
			t.Fatalf("line %d width = %d, want 24: %q", i, w, ansi.Strip(line))
		}
	}
	top := ansi.Strip(lines[0])
	if !strings.Contains(top, "Navigation") || !strings.Contains(top, "42%") {
		t.Fatalf("title or badge missing from top border: %q", top)
	}
}

func TestPaneDropsBadgeWhenNarrow(t *testing.T) {
	out := Pane{Title: "A long pane title", Badge: "100%"}.Render(16, 3)
	top := ansi.Strip(strings.Split(out, "\n")[0])
	if strings.Contains(top, "100%") {
		t.Fatalf("badge should be dropped: %q", top)
	}
	if ansi.StringWidth(top) != 16 {
		t.Fatalf("top border width = %d", ansi.StringWidth(top))
	}
}

func TestInnerSize(t *testing.T) {
	w, h := InnerSize(30, 10)
	if w != 26 || h != 8 {
		t.Fatalf("InnerSize = %d,%d", w, h)
	}
}
