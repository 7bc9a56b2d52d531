package core

import (
	"fmt"
	"slices"
	"strings"
)

const (
	ScopeSidebar = "pane:sidebar"
	ScopeContent = "pane:content"

	ScopeCommand     = "screen:command"
	ScopeTopicPicker = "screen:topic-picker"
)

// MaxTopicShortcuts is the number of topics reachable with a digit key.
const MaxTopicShortcuts = 9

var paneScopes = []string{ScopeSidebar, ScopeContent}

func DefaultKeyBindings() []KeyBinding {
	bindings := []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: paneScopes},
		{Keys: []string{"up", "k"}, Action: "select-prev", Description: "prev topic", Scopes: []string{ScopeSidebar}},
		{Keys: []string{"down", "j"}, Action: "select-next", Description: "next topic", Scopes: []string{ScopeSidebar}},
		{Keys: []string{"up", "k"}, Action: "scroll-up", Description: "scroll up", Scopes: []string{ScopeContent}},
		{Keys: []string{"down", "j"}, Action: "scroll-down", Description: "scroll down", Scopes: []string{ScopeContent}},
	}
	for i := 1; i <= MaxTopicShortcuts; i++ {
		b := KeyBinding{Keys: []string{fmt.Sprint(i)}, Action: TopicAction(i), Scopes: paneScopes}
		if i == 1 {
			b.Description = "topic"
			b.HelpKey = fmt.Sprintf("1-%d", MaxTopicShortcuts)
		}
		bindings = append(bindings, b)
	}
	return append(bindings,
		KeyBinding{Keys: []string{"tab"}, Action: "toggle-focus", Description: "focus", Scopes: paneScopes},
		KeyBinding{Keys: []string{"/"}, Action: "open-topic-picker", Description: "find", Scopes: paneScopes},
		KeyBinding{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: paneScopes},
		KeyBinding{Keys: []string{"s"}, Action: "toggle-sidebar", Description: "sidebar", Scopes: paneScopes},
		KeyBinding{Keys: []string{"pgup"}, Action: "page-up", Description: "page up", Scopes: paneScopes},
		KeyBinding{Keys: []string{"pgdown"}, Action: "page-down", Description: "page down", Scopes: paneScopes},
		KeyBinding{Keys: []string{"g", "home"}, Action: "scroll-top", Description: "top", Scopes: paneScopes},
		KeyBinding{Keys: []string{"G", "end"}, Action: "scroll-bottom", Description: "bottom", Scopes: paneScopes},
		KeyBinding{Keys: []string{"left", "h"}, Action: "scroll-left", Description: "left", Scopes: []string{ScopeContent}},
		KeyBinding{Keys: []string{"right", "l"}, Action: "scroll-right", Description: "right", Scopes: []string{ScopeContent}},
		KeyBinding{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{ScopeCommand, ScopeTopicPicker}},
		KeyBinding{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{ScopeCommand, ScopeTopicPicker}},
	)
}

// TopicAction is the action name for the digit shortcut of topic n (1-based).
func TopicAction(n int) string {
	return fmt.Sprintf("topic-%d", n)
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action
// appears in actionKeys. Unknown actions are returned so callers can warn.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) ([]KeyBinding, []string) {
	known := make(map[string]bool, len(bindings))
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		known[b.Action] = true
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
			HelpKey:     b.HelpKey,
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
			next.HelpKey = ""
		}
		out = append(out, next)
	}
	var unknown []string
	for action := range actionKeys {
		if !known[action] {
			unknown = append(unknown, action)
		}
	}
	slices.Sort(unknown)
	return out, unknown
}
