package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	listItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	listSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	listFooterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c")).Italic(true)
)

// List is a single-choice list with a cursor marker. The window scrolls so
// the cursor row stays visible. Footer lines are pinned to the bottom.
type List struct {
	Items  []string
	Cursor int
	Footer string
}

const cursorMarker = "▶ "

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	var footer []string
	if f := strings.TrimSpace(l.Footer); f != "" {
		footer = append([]string{""}, strings.Split(f, "\n")...)
	}
	rowsAvail := height - len(footer)
	if rowsAvail < 1 {
		footer = nil
		rowsAvail = height
	}

	start := VisibleStart(len(l.Items), l.Cursor, rowsAvail)
	end := min(len(l.Items), start+rowsAvail)
	rows := make([]string, 0, height)
	for i := start; i < end; i++ {
		prefix := "  "
		style := listItemStyle
		if i == l.Cursor {
			prefix = cursorMarker
			style = listSelectedStyle
		}
		rows = append(rows, style.Render(ansi.Truncate(prefix+l.Items[i], width, "…")))
	}
	for len(rows) < rowsAvail {
		rows = append(rows, "")
	}
	for _, f := range footer {
		rows = append(rows, listFooterStyle.Render(ansi.Truncate(f, width, "…")))
	}
	return strings.Join(rows, "\n")
}

// VisibleStart returns the first row of a window of size rows over n items
// that keeps cursor in view, keeping the cursor near the middle when it can.
func VisibleStart(n, cursor, rows int) int {
	if rows <= 0 || n <= rows {
		return 0
	}
	cursor = min(max(cursor, 0), n-1)
	start := cursor - rows/2
	return min(max(start, 0), n-rows)
}
