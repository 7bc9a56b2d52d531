package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/devsheet/core"
	"github.com/jask/devsheet/widgets"
)

var (
	pickerQueryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	pickerHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
)

// TopicPicker filters the topic list as the user types. Enter selects the
// highlighted topic, esc cancels.
type TopicPicker struct {
	picker *core.Picker
}

// NewTopicPicker lists labels in sidebar order with the cursor on current.
// search maps a label to extra text to match (such as its slug).
func NewTopicPicker(labels []string, current string, search func(label string) string) *TopicPicker {
	items := make([]core.PickerItem, 0, len(labels))
	for i, label := range labels {
		s := label
		if search != nil {
			s += " " + search(label)
		}
		items = append(items, core.PickerItem{
			ID:     label,
			Label:  label,
			Meta:   fmt.Sprintf("%d", i+1),
			Search: s,
		})
	}
	p := core.NewPicker("Go to topic", items)
	p.SetCursorByID(current)
	return &TopicPicker{picker: p}
}

func (s *TopicPicker) Title() string { return s.picker.Title() }
func (s *TopicPicker) Scope() string { return core.ScopeTopicPicker }

func (s *TopicPicker) Picker() *core.Picker { return s.picker }

func (s *TopicPicker) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	result := s.picker.HandleKey(keyMsg.String())
	switch result.Action {
	case core.PickerActionCancelled:
		return s, nil, true
	case core.PickerActionSelected:
		return s, core.SelectTopicCmd(result.Item.ID), true
	default:
		return s, nil, false
	}
}

func (s *TopicPicker) View(width, height int) string {
	q := s.picker.Query()
	filter := pickerQueryStyle.Render(q)
	if q == "" {
		filter = pickerHintStyle.Render("(type to filter)")
	}
	lines := []string{"Filter: " + filter, ""}

	items := s.picker.Items()
	rows := max(1, height-4)
	if len(items) == 0 {
		lines = append(lines, "  No matching topics")
	} else {
		labels := make([]string, 0, len(items))
		for _, it := range items {
			labels = append(labels, fmt.Sprintf("%2s  %s", it.Meta, it.Label))
		}
		lines = append(lines, strings.Split(widgets.List{Items: labels, Cursor: s.picker.Cursor()}.Render(width, min(rows, len(labels))), "\n")...)
	}
	lines = append(lines, "", pickerHintStyle.Render("Enter select. Esc cancel."))
	return core.ClipHeight(core.TrimToWidth(strings.Join(lines, "\n"), width), max(6, height))
}
