package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/devsheet/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))

	var body string
	if bodyHeight > 0 {
		body = m.bodyWidget().Render(max(1, m.width), bodyHeight)
		if top := m.screens.Top(); top != nil {
			popup := top.Title() + "\n\n" + top.View(max(20, m.width-16), max(6, bodyHeight-8))
			body = widgets.RenderPopup(body, popup, max(1, m.width), bodyHeight)
		}
	}
	body = fitHeight(body, bodyHeight)
	view := strings.Join([]string{header, body, status, footer}, "\n")
	if bodyHeight == 0 {
		view = strings.Join([]string{header, status, footer}, "\n")
	}
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func (m Model) bodyWidget() widgets.Widget {
	content := widgets.Pane{
		Title:   m.session.Selection,
		Badge:   scrollBadge(m),
		Content: m.viewport.View(),
		Focused: m.focus == FocusContent,
		Raw:     true,
	}
	if m.sidebarHidden || m.sidebarPaneWidth() == 0 {
		return content
	}
	sw := m.sidebarPaneWidth()
	_, listHeight := widgets.InnerSize(sw, max(3, m.height-chromeHeight))
	sidebar := widgets.Pane{
		Title: m.navTitle,
		Content: widgets.List{
			Items:  m.nav.Labels(),
			Cursor: m.cursor,
			Footer: m.credit,
		}.Render(max(1, sw-4), listHeight),
		Focused: m.focus == FocusSidebar,
		Raw:     true,
	}
	return widgets.HStack{Widgets: []widgets.Widget{sidebar, content}, Widths: []int{sw}}
}

func scrollBadge(m Model) string {
	if m.viewport.TotalLineCount() <= m.viewport.Height {
		return ""
	}
	return fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100)
}

func renderHeader(m Model) string {
	title := m.title
	if title == "" {
		title = "Cheat Sheet"
	}
	left := headerAppStyle.Render(" " + title + " ")
	labels := m.nav.Labels()
	right := headerTopicStyle.Render(m.session.Selection) +
		headerCountStyle.Render(fmt.Sprintf("%d/%d", m.cursor+1, len(labels)))
	right = ansi.Truncate(right, max(1, m.width-ansi.StringWidth(left)-1), "")
	gap := max(1, m.width-ansi.StringWidth(left)-ansi.StringWidth(right))
	return renderHeaderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right)
}

// fitHeight is ClipHeight padded with empty lines to exactly height.
func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(ClipHeight(s, height), "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderHeaderBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
