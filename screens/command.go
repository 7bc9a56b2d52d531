package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/devsheet/core"
)

type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Disabled bool
	Reason   string
}

func (i CommandOption) Title() string {
	if i.Disabled && i.Reason != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Reason)
	}
	return i.Name
}
func (i CommandOption) Description() string { return i.Desc }
func (i CommandOption) FilterValue() string { return i.Name + " " + i.Desc + " " + i.ID }

// CommandScreen is the command palette: a text input driving a search over
// the command registry, with results in a bubbles list.
type CommandScreen struct {
	scope    string
	search   func(query string) []CommandOption
	onSelect func(id string) tea.Msg
	input    textinput.Model
	list     list.Model
	lastQ    string
}

func NewCommandScreen(scope string, search func(query string) []CommandOption, onSelect func(id string) tea.Msg) *CommandScreen {
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "cmd> "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 64, 14)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	s := &CommandScreen{scope: scope, search: search, onSelect: onSelect, input: inp, list: lst}
	s.refresh()
	return s
}

func (s *CommandScreen) Title() string { return "Command Palette" }
func (s *CommandScreen) Scope() string { return core.ScopeCommand }

// Query is the current search text.
func (s *CommandScreen) Query() string { return s.input.Value() }

// Options returns the rows currently listed.
func (s *CommandScreen) Options() []CommandOption {
	items := s.list.Items()
	out := make([]CommandOption, 0, len(items))
	for _, it := range items {
		if opt, ok := it.(CommandOption); ok {
			out = append(out, opt)
		}
	}
	return out
}

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			return s, nil, true
		case "enter":
			it, ok := s.list.SelectedItem().(CommandOption)
			if !ok {
				return s, nil, false
			}
			if it.Disabled {
				return s, core.StatusCmd(it.Reason), true
			}
			if s.onSelect != nil {
				return s, func() tea.Msg { return s.onSelect(it.ID) }, true
			}
			return s, nil, true
		case "up", "down", "ctrl+p", "ctrl+n":
			var cmd tea.Cmd
			s.list, cmd = s.list.Update(navKey(km))
			return s, cmd, false
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.refresh()
	return s, cmd, false
}

// navKey maps emacs-style movement onto the arrow keys the list understands.
func navKey(km tea.KeyMsg) tea.KeyMsg {
	switch km.String() {
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return km
}

func (s *CommandScreen) refresh() {
	query := strings.TrimSpace(s.input.Value())
	if query == s.lastQ && len(s.list.Items()) > 0 {
		return
	}
	s.lastQ = query
	items := s.search(query)
	ls := make([]list.Item, 0, len(items))
	for _, it := range items {
		ls = append(ls, it)
	}
	_ = s.list.SetItems(ls)
	s.list.Select(0)
}

func (s *CommandScreen) View(width, height int) string {
	s.list.SetWidth(width)
	s.list.SetHeight(max(4, height-2))
	body := s.list.View()
	if len(s.list.Items()) == 0 {
		body = "  No matching commands"
	}
	return core.ClipHeight(core.TrimToWidth(s.input.View()+"\n\n"+body, width), height)
}
