package app

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/devsheet/core"
	"github.com/jask/devsheet/internal/catalog"
	"github.com/jask/devsheet/internal/config"
	"github.com/jask/devsheet/internal/content"
	"github.com/jask/devsheet/screens"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.UI.Style = "notty"
	return cfg
}

func update(t *testing.T, m core.Model, msg tea.Msg) (core.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(core.Model), cmd
}

func TestNewModelStartsOnConfiguredTopic(t *testing.T) {
	m, err := NewModel(testConfig(), "")
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	if m.Selection() != content.StreamlitBasics.String() {
		t.Fatalf("selection = %q", m.Selection())
	}
	if len(m.Labels()) != len(content.Topics()) {
		t.Fatalf("labels = %d, want %d", len(m.Labels()), len(content.Topics()))
	}
}

func TestNewModelAcceptsSlugOverride(t *testing.T) {
	m, err := NewModel(testConfig(), "github-commands")
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	if m.Selection() != "GitHub Commands" {
		t.Fatalf("selection = %q", m.Selection())
	}
	if !strings.Contains(m.Document().String(), "git init") {
		t.Fatalf("git commands page not rendered")
	}
}

func TestNewModelUnknownTopicSuggests(t *testing.T) {
	_, err := NewModel(testConfig(), "Kolada AP")
	var unknown *catalog.UnknownLabelError
	if !errors.As(err, &unknown) || unknown.Suggestion != "Kolada API" {
		t.Fatalf("err = %v", err)
	}
}

func TestNewModelRejectsBadStyle(t *testing.T) {
	cfg := testConfig()
	cfg.UI.Style = "neon"
	if _, err := NewModel(cfg, ""); err == nil {
		t.Fatalf("expected style error")
	}
}

func TestCommandsRegisteredForEveryTopic(t *testing.T) {
	m, err := NewModel(testConfig(), "")
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	reg := m.CommandRegistry()
	if reg.Len() != len(m.Labels())+3 {
		t.Fatalf("commands = %d", reg.Len())
	}
	res := reg.Search("streamlit basics", core.ScopeSidebar, &m)
	if len(res) != 1 || !res[0].Disabled || res[0].Reason != "already showing" {
		t.Fatalf("current topic command = %+v", res)
	}
}

func TestPaletteGoToCommandSelectsTopic(t *testing.T) {
	m, err := NewModel(testConfig(), "")
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlK})
	m, cmd := update(t, m, core.CommandExecuteMsg{CommandID: "goto:" + catalog.Slug("Kolada API")})
	if cmd != nil {
		t.Fatalf("go to command should not emit a follow-up")
	}
	if m.Selection() != "Kolada API" {
		t.Fatalf("selection = %q", m.Selection())
	}
}

func TestTopicPickerFlow(t *testing.T) {
	m, err := NewModel(testConfig(), "")
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	if m.ActiveScope() != core.ScopeTopicPicker {
		t.Fatalf("scope = %q", m.ActiveScope())
	}
	for _, r := range "perp" {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("enter should emit a selection")
	}
	m, _ = update(t, m, cmd())
	if m.Selection() != "Perplexity API" {
		t.Fatalf("selection = %q", m.Selection())
	}
	if m.ActiveScope() != core.ScopeSidebar {
		t.Fatalf("picker should be closed, scope %q", m.ActiveScope())
	}
}

func TestKeyOverridesApply(t *testing.T) {
	cfg := testConfig()
	cfg.Keys = map[string][]string{"quit": {"x"}}
	m, err := NewModel(cfg, "")
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd == nil {
		t.Fatalf("x should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("x should quit")
	}
}

var _ core.Screen = (*screens.TopicPicker)(nil)
var _ core.Screen = (*screens.CommandScreen)(nil)
