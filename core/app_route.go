package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		m.rerenderIfResized()
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case TopicSelectedMsg:
		return m, m.SelectLabel(msg.Label)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, m.Quit()
		}
		if top := m.screens.Top(); top != nil {
			return m.updateTopScreen(top, msg)
		}
		return m.handlePaneKey(msg)
	}

	if top := m.screens.Top(); top != nil {
		return m.updateTopScreen(top, msg)
	}
	return m, nil
}

func (m Model) updateTopScreen(top Screen, msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd, pop := top.Update(msg)
	if pop {
		m.screens.Pop()
		return m, cmd
	}
	if next != nil {
		m.screens.ReplaceTop(next)
	}
	return m, cmd
}

func (m Model) handlePaneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := m.ActiveScope()
	action := m.keys.ActionFor(msg, scope)
	switch action {
	case "":
		return m, nil
	case "quit":
		return m, m.Quit()
	case "toggle-focus":
		m.ToggleFocus()
	case "toggle-sidebar":
		m.ToggleSidebar()
	case "select-prev":
		return m, m.SelectIndex(m.cursor - 1)
	case "select-next":
		return m, m.SelectIndex(m.cursor + 1)
	case "scroll-up":
		m.ScrollBy(-1)
	case "scroll-down":
		m.ScrollBy(1)
	case "scroll-left":
		m.ScrollColumns(-columnStep)
	case "scroll-right":
		m.ScrollColumns(columnStep)
	case "page-up":
		m.ScrollBy(-max(1, m.viewport.Height))
	case "page-down":
		m.ScrollBy(max(1, m.viewport.Height))
	case "scroll-top":
		m.ScrollTop()
	case "scroll-bottom":
		m.ScrollBottom()
	case "open-command-palette":
		if m.OpenCommandModal != nil {
			m.screens.Push(m.OpenCommandModal(&m, scope))
		}
	case "open-topic-picker":
		if m.OpenTopicPicker != nil {
			m.screens.Push(m.OpenTopicPicker(&m))
		}
	default:
		for i := 1; i <= MaxTopicShortcuts; i++ {
			if action == TopicAction(i) {
				return m, m.SelectIndex(i - 1)
			}
		}
	}
	return m, nil
}
