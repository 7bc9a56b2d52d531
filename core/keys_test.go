package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "palette", Scopes: []string{ScopeSidebar}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", ScopeSidebar) {
		t.Fatalf("expected ctrl+k in sidebar scope")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", ScopeContent) {
		t.Fatalf("did not expect ctrl+k in content scope")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", ScopeContent) {
		t.Fatalf("expected q to match wildcard scope")
	}
}

func TestDefaultBindingsSplitArrowsByFocus(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	down := tea.KeyMsg{Type: tea.KeyDown}
	if got := reg.ActionFor(down, ScopeSidebar); got != "select-next" {
		t.Fatalf("down in sidebar = %q", got)
	}
	if got := reg.ActionFor(down, ScopeContent); got != "scroll-down" {
		t.Fatalf("down in content = %q", got)
	}
	if got := reg.ActionFor(keyMsg("G"), ScopeContent); got != "scroll-bottom" {
		t.Fatalf("G = %q", got)
	}
	if got := reg.ActionFor(keyMsg("g"), ScopeContent); got != "scroll-top" {
		t.Fatalf("g = %q", got)
	}
	if got := reg.ActionFor(keyMsg("l"), ScopeContent); got != "scroll-right" {
		t.Fatalf("l in content = %q", got)
	}
	if got := reg.ActionFor(tea.KeyMsg{Type: tea.KeyLeft}, ScopeContent); got != "scroll-left" {
		t.Fatalf("left in content = %q", got)
	}
	if got := reg.ActionFor(keyMsg("h"), ScopeSidebar); got != "" {
		t.Fatalf("h in sidebar = %q", got)
	}
	if got := reg.ActionFor(keyMsg("q"), ScopeTopicPicker); got != "" {
		t.Fatalf("q must be free to type in the picker, got %q", got)
	}
}

func TestApplyActionKeybindings(t *testing.T) {
	bindings, unknown := ApplyActionKeybindings(DefaultKeyBindings(), map[string][]string{
		"quit":  {"x"},
		"bogus": {"z"},
	})
	if len(unknown) != 1 || unknown[0] != "bogus" {
		t.Fatalf("unknown = %v", unknown)
	}
	reg := NewKeyRegistry(bindings)
	if !reg.IsAction(keyMsg("x"), "quit", ScopeSidebar) {
		t.Fatalf("override not applied")
	}
	if reg.IsAction(keyMsg("q"), "quit", ScopeSidebar) {
		t.Fatalf("old key should be replaced")
	}
	byAction := DefaultKeybindingsByAction(bindings)
	if keys := byAction["quit"]; len(keys) != 1 || keys[0] != "x" {
		t.Fatalf("byAction quit = %v", keys)
	}
}

func TestFooterShowsScopeBindings(t *testing.T) {
	m := newTestModel(t)
	footer := RenderFooter(m)
	if !containsPlain(footer, "next topic") || !containsPlain(footer, "1-9 topic") {
		t.Fatalf("sidebar footer = %q", footer)
	}
	m = press(t, m, "tab")
	footer = RenderFooter(m)
	if containsPlain(footer, "next topic") || !containsPlain(footer, "scroll down") {
		t.Fatalf("content footer = %q", footer)
	}
}
