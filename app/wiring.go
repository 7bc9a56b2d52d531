package app

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/devsheet/core"
	"github.com/jask/devsheet/internal/catalog"
	"github.com/jask/devsheet/internal/config"
	"github.com/jask/devsheet/internal/content"
	"github.com/jask/devsheet/internal/render"
	"github.com/jask/devsheet/screens"
)

// NewModel builds the interactive session from configuration. startTopic
// overrides cfg.UI.StartTopic when set and may be a label or a slug.
func NewModel(cfg config.Config, startTopic string) (core.Model, error) {
	reg, err := content.Registry()
	if err != nil {
		return core.Model{}, fmt.Errorf("build topics: %w", err)
	}
	start, err := ResolveTopic(reg, firstNonEmpty(startTopic, cfg.UI.StartTopic))
	if err != nil {
		return core.Model{}, err
	}
	renderer, err := render.New(cfg.UI.Style)
	if err != nil {
		return core.Model{}, err
	}
	bindings, unknown := core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys)
	for _, action := range unknown {
		log.Printf("warn: keys.%s does not name an action", action)
	}
	credit := ""
	if cfg.UI.ShowCredit {
		credit = content.Credit
	}

	m, err := core.NewModel(core.Options{
		Navigator:    catalog.NewNavigator(reg),
		Renderer:     renderer,
		Keys:         core.NewKeyRegistry(bindings),
		Commands:     core.NewCommandRegistry(nil),
		Selection:    start,
		Title:        content.AppTitle,
		NavTitle:     content.NavTitle,
		Credit:       credit,
		SidebarWidth: cfg.UI.SidebarWidth,
		WrapWidth:    cfg.UI.WrapWidth,
	})
	if err != nil {
		return core.Model{}, err
	}
	ConfigureModel(&m)
	return m, nil
}

// ResolveTopic maps a label, a case variant or a slug to the registered
// label. Empty input means the first topic.
func ResolveTopic(reg *catalog.Registry, query string) (string, error) {
	if query == "" {
		labels := reg.Labels()
		if len(labels) == 0 {
			return "", fmt.Errorf("no topics registered")
		}
		return labels[0], nil
	}
	if label, ok := reg.Find(query); ok {
		return label, nil
	}
	_, err := reg.Resolve(query)
	return "", err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func ConfigureModel(m *core.Model) {
	if m == nil {
		return
	}

	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandScreen(scope,
			func(query string) []screens.CommandOption {
				results := model.CommandRegistry().Search(query, scope, model)
				out := make([]screens.CommandOption, 0, len(results))
				for _, r := range results {
					out = append(out, screens.CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
				}
				return out
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}

	m.OpenTopicPicker = func(model *core.Model) core.Screen {
		return screens.NewTopicPicker(model.Labels(), model.Selection(), catalog.Slug)
	}

	RegisterCommands(m.CommandRegistry(), m.Labels())
}

func RegisterCommands(reg *core.CommandRegistry, labels []string) {
	for i, label := range labels {
		reg.Register(core.Command{
			ID:          "goto:" + catalog.Slug(label),
			Name:        "Go to " + label,
			Description: fmt.Sprintf("Show topic %d", i+1),
			Scopes:      []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				return m.SelectLabel(label)
			},
			Disabled: func(m *core.Model) (bool, string) {
				if m.Selection() == label {
					return true, "already showing"
				}
				return false, ""
			},
		})
	}
	reg.Register(core.Command{
		ID:          "toggle-sidebar",
		Name:        "Toggle sidebar",
		Description: "Show or hide the navigation pane",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			m.ToggleSidebar()
			if m.SidebarHidden() {
				return core.StatusCmd("Sidebar hidden")
			}
			return core.StatusCmd("Sidebar shown")
		},
	})
	reg.Register(core.Command{
		ID:          "scroll-top",
		Name:        "Scroll to top",
		Description: "Jump to the start of the current topic",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			m.ScrollTop()
			return nil
		},
	})
	reg.Register(core.Command{
		ID:          "quit",
		Name:        "Quit",
		Description: "Leave the cheat sheet",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return m.Quit()
		},
	})
}
