package core

import (
	"cmp"
	"log"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
}

// CommandRegistry lists commands in registration order. Registering an ID
// twice replaces the command in place.
type CommandRegistry struct {
	commands map[string]Command
	order    map[string]int
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}, order: map[string]int{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	if _, ok := r.order[c.ID]; !ok {
		r.order[c.ID] = len(r.order)
	}
	r.commands[c.ID] = c
}

func (r *CommandRegistry) Len() int {
	return len(r.commands)
}

func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	terms := strings.Fields(strings.ToLower(query))
	results := make([]CommandResult, 0, len(r.commands))
	for _, c := range r.commands {
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		h := strings.ToLower(c.Name + " " + c.Description + " " + c.ID)
		if !containsAll(h, terms) {
			continue
		}
		disabled := false
		reason := ""
		if c.Disabled != nil {
			disabled, reason = c.Disabled(m)
		}
		results = append(results, CommandResult{
			CommandID: c.ID,
			Name:      c.Name,
			Desc:      c.Description,
			Disabled:  disabled,
			Reason:    reason,
		})
	}
	slices.SortFunc(results, func(a, b CommandResult) int {
		if a.Disabled != b.Disabled {
			if !a.Disabled {
				return -1
			}
			return 1
		}
		return cmp.Compare(r.order[a.CommandID], r.order[b.CommandID])
	})
	return results
}

func containsAll(haystack string, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(haystack, t) {
			return false
		}
	}
	return true
}

func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if c.Disabled != nil {
		disabled, reason := c.Disabled(m)
		if disabled {
			if reason == "" {
				reason = "command is disabled"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	log.Printf("session=%s command=%s", m.Session().ID, id)
	return c.Execute(m)
}
