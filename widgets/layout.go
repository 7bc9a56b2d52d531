package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Widget interface {
	Render(width, height int) string
}

// Text renders a fixed string clipped to the given box.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := splitToLines(string(t), height)
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

type VStack struct {
	Widgets []Widget
	Heights []int
	Spacing int
}

// Render gives each widget its fixed height from Heights. Widgets with a zero
// (or missing) height share what is left.
func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	spacingTotal := max(0, v.Spacing*(len(v.Widgets)-1))
	heights := splitSizes(max(1, height-spacingTotal), len(v.Widgets), v.Heights)
	lines := make([]string, 0, height)
	for i, w := range v.Widgets {
		if heights[i] > 0 {
			lines = append(lines, splitToLines(w.Render(width, heights[i]), heights[i])...)
		}
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, "")
			}
		}
	}
	return strings.Join(lines, "\n")
}

type HStack struct {
	Widgets []Widget
	Widths  []int
	Gap     int
}

// Render lays widgets out left to right. Widths works like VStack.Heights.
func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	widths := splitSizes(max(1, width-gapTotal), len(h.Widgets), h.Widths)
	rendered := make([][]string, len(h.Widgets))
	maxLines := 0
	for i, w := range h.Widgets {
		if widths[i] <= 0 {
			continue
		}
		part := strings.Split(w.Render(widths[i], height), "\n")
		rendered[i] = part
		maxLines = max(maxLines, len(part))
	}
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		cols := make([]string, 0, len(rendered))
		for i := range rendered {
			if widths[i] <= 0 {
				continue
			}
			if line < len(rendered[i]) {
				cols = append(cols, padRight(rendered[i][line], widths[i]))
			} else {
				cols = append(cols, strings.Repeat(" ", widths[i]))
			}
		}
		out = append(out, strings.Join(cols, strings.Repeat(" ", h.Gap)))
	}
	return strings.Join(out, "\n")
}

// splitSizes hands out fixed sizes first, clamped to total, then splits the
// remainder evenly between the flexible slots.
func splitSizes(total, n int, fixed []int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	used := 0
	flex := 0
	for i := range out {
		if i < len(fixed) && fixed[i] > 0 {
			out[i] = min(fixed[i], max(0, total-used))
			used += out[i]
			continue
		}
		flex++
	}
	if flex == 0 {
		return out
	}
	rest := max(0, total-used)
	share, extra := rest/flex, rest%flex
	for i := range out {
		if i < len(fixed) && fixed[i] > 0 {
			continue
		}
		out[i] = share
		if extra > 0 {
			out[i]++
			extra--
		}
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
