package widgets

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestListMarksCursor(t *testing.T) {
	l := List{Items: []string{"Alpha", "Beta", "Gamma"}, Cursor: 1}
	lines := strings.Split(ansi.Strip(l.Render(20, 3)), "\n")
	if lines[1] != cursorMarker+"Beta" {
		t.Fatalf("cursor row = %q", lines[1])
	}
	if lines[0] != "  Alpha" {
		t.Fatalf("plain row = %q", lines[0])
	}
}

func TestListScrollsToCursor(t *testing.T) {
	items := make([]string, 30)
	for i := range items {
		items[i] = fmt.Sprintf("item-%02d", i)
	}
	out := ansi.Strip(List{Items: items, Cursor: 25}.Render(20, 5))
	if !strings.Contains(out, cursorMarker+"item-25") {
		t.Fatalf("cursor row not visible:\n%s", out)
	}
	if strings.Contains(out, "item-00") {
		t.Fatalf("window did not scroll:\n%s", out)
	}
}

func TestListPinsFooter(t *testing.T) {
	out := ansi.Strip(List{Items: []string{"A"}, Footer: "Developed by someone"}.Render(30, 6))
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("line count = %d", len(lines))
	}
	if lines[5] != "Developed by someone" {
		t.Fatalf("footer should sit on the last row, got %q", lines[5])
	}
}

func TestVisibleStart(t *testing.T) {
	cases := []struct {
		n, cursor, rows, want int
	}{
		{5, 4, 10, 0},
		{20, 0, 5, 0},
		{20, 10, 5, 8},
		{20, 19, 5, 15},
	}
	for _, c := range cases {
		if got := VisibleStart(c.n, c.cursor, c.rows); got != c.want {
			t.Fatalf("VisibleStart(%d,%d,%d) = %d, want %d", c.n, c.cursor, c.rows, got, c.want)
		}
	}
}
