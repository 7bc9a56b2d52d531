package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	paneBorderColor  = lipgloss.Color("#6c7086")
	paneFocusColor   = lipgloss.Color("#a6e3a1")
	paneTitleColor   = lipgloss.Color("#cdd6f4")
	paneBadgeColor   = lipgloss.Color("#a6adc8")
	paneContentColor = lipgloss.Color("#cdd6f4")
)

// Pane draws a rounded border with the title set into the top edge and an
// optional badge on the right of it. Content is clipped, never wrapped.
type Pane struct {
	Title   string
	Badge   string
	Content string
	Focused bool
	// Raw leaves content styling alone, for text that carries its own ANSI.
	Raw bool
}

// InnerSize is the content box left inside a pane of the given size.
func InnerSize(width, height int) (int, int) {
	return max(1, width-4), max(1, height-2)
}

func (p Pane) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	width = max(width, 6)
	height = max(height, 3)

	border := paneBorderColor
	titlePrefix := "  "
	if p.Focused {
		border = paneFocusColor
		titlePrefix = "● "
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(paneTitleColor).Bold(true)
	badgeStyle := lipgloss.NewStyle().Foreground(paneBadgeColor)
	contentStyle := lipgloss.NewStyle().Foreground(paneContentColor)

	innerWidth := width - 2
	contentWidth, innerHeight := InnerSize(width, height)

	title := " " + strings.TrimSpace(titlePrefix+p.Title) + " "
	badge := ""
	if b := strings.TrimSpace(p.Badge); b != "" {
		badge = " " + b + " "
	}
	if ansi.StringWidth(title)+ansi.StringWidth(badge)+2 > innerWidth {
		badge = ""
	}
	if ansi.StringWidth(title)+1 > innerWidth {
		title = ansi.Truncate(title, max(1, innerWidth-1), "…")
	}
	dashes := max(0, innerWidth-1-ansi.StringWidth(title)-ansi.StringWidth(badge))
	rightDash := min(1, dashes)
	midDash := dashes - rightDash

	top := borderStyle.Render("╭─") +
		titleStyle.Render(title) +
		borderStyle.Render(strings.Repeat("─", midDash)) +
		badgeStyle.Render(badge) +
		borderStyle.Render(strings.Repeat("─", rightDash)+"╮")

	v := borderStyle.Render("│")
	lines := strings.Split(p.Content, "\n")
	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(lines) {
			line = ansi.Truncate(lines[i], contentWidth, "")
		}
		if !p.Raw {
			line = contentStyle.Render(line)
		}
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}
