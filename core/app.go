package core

import (
	"errors"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/devsheet/internal/catalog"
	"github.com/jask/devsheet/internal/page"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// ContentRenderer turns a topic document into terminal text at a width.
type ContentRenderer interface {
	Render(doc *page.Document, width int) (string, error)
}

// Session is the state one user interaction cycle reads: which topic is
// selected. ID tags log lines.
type Session struct {
	ID        uuid.UUID
	Selection string
}

type Focus int

const (
	FocusSidebar Focus = iota
	FocusContent
)

const (
	defaultWidth        = 100
	defaultHeight       = 32
	defaultSidebarWidth = 28
	minContentWidth     = 20
	chromeHeight        = 3 // header, status, footer
)

type Options struct {
	Navigator *catalog.Navigator
	Renderer  ContentRenderer
	Keys      *KeyRegistry
	Commands  *CommandRegistry

	// Selection is the initial topic label. Empty means the first topic.
	Selection    string
	SessionID    uuid.UUID
	Title        string
	NavTitle     string
	Credit       string
	SidebarWidth int
	// WrapWidth caps the render width; 0 fits the content pane.
	WrapWidth int
}

type Model struct {
	width  int
	height int

	session  Session
	nav      *catalog.Navigator
	renderer ContentRenderer
	doc      *page.Document
	viewport viewport.Model
	// renderedWidth is the width the viewport content was rendered at.
	renderedWidth int

	cursor        int
	focus         Focus
	sidebarHidden bool
	sidebarWidth  int
	wrapWidth     int
	title         string
	navTitle      string
	credit        string

	screens   ScreenStack
	keys      *KeyRegistry
	commands  *CommandRegistry
	status    string
	statusErr bool
	quitting  bool

	OpenCommandModal func(m *Model, scope string) Screen
	OpenTopicPicker  func(m *Model) Screen
}

// NewModel builds the session and renders the initial topic. An initial
// selection that is not registered is an error.
func NewModel(opts Options) (Model, error) {
	if opts.Navigator == nil || len(opts.Navigator.Labels()) == 0 {
		return Model{}, errors.New("core: navigator has no topics")
	}
	if opts.Renderer == nil {
		return Model{}, errors.New("core: content renderer is required")
	}
	if opts.Keys == nil {
		opts.Keys = NewKeyRegistry(DefaultKeyBindings())
	}
	if opts.Commands == nil {
		opts.Commands = NewCommandRegistry(nil)
	}
	if opts.SessionID == uuid.Nil {
		opts.SessionID = uuid.New()
	}
	if opts.SidebarWidth <= 0 {
		opts.SidebarWidth = defaultSidebarWidth
	}
	if opts.NavTitle == "" {
		opts.NavTitle = "Navigation"
	}

	labels := opts.Navigator.Labels()
	selection := opts.Selection
	if selection == "" {
		selection = labels[0]
	}
	cursor := opts.Navigator.Registry().Index(selection)
	if cursor < 0 {
		_, err := opts.Navigator.Registry().Resolve(selection)
		return Model{}, fmt.Errorf("initial topic: %w", err)
	}

	m := Model{
		width:        defaultWidth,
		height:       defaultHeight,
		session:      Session{ID: opts.SessionID, Selection: selection},
		nav:          opts.Navigator,
		renderer:     opts.Renderer,
		cursor:       cursor,
		focus:        FocusSidebar,
		sidebarWidth: opts.SidebarWidth,
		wrapWidth:    max(0, opts.WrapWidth),
		title:        opts.Title,
		navTitle:     opts.NavTitle,
		credit:       opts.Credit,
		keys:         opts.Keys,
		commands:     opts.Commands,
		status:       "Ready",
	}
	m.viewport = viewport.New(1, 1)
	m.viewport.SetHorizontalStep(columnStep)
	m.layout()
	if err := m.renderSelection(); err != nil {
		return Model{}, err
	}
	log.Printf("session=%s start topic=%q", m.session.ID, selection)
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if m.focus == FocusContent {
		return ScopeContent
	}
	return ScopeSidebar
}

func (m Model) Session() Session { return m.session }

func (m Model) Selection() string { return m.session.Selection }

func (m Model) Focus() Focus { return m.focus }

func (m Model) SidebarHidden() bool { return m.sidebarHidden }

func (m Model) Labels() []string { return m.nav.Labels() }

func (m Model) Status() (string, bool) { return m.status, m.statusErr }

// Document is the last successfully rendered topic.
func (m Model) Document() *page.Document { return m.doc }

func (m Model) ScrollOffset() int { return m.viewport.YOffset }

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m *Model) Quit() tea.Cmd {
	m.quitting = true
	log.Printf("session=%s quit", m.session.ID)
	return tea.Quit
}

// SelectLabel is the navigation control: it records label as the session
// selection and re-renders. An unknown label leaves the selection unchanged
// and reports the error in the status bar.
func (m *Model) SelectLabel(label string) tea.Cmd {
	idx := m.nav.Registry().Index(label)
	if idx < 0 {
		_, err := m.nav.Registry().Resolve(label)
		log.Printf("session=%s select topic=%q: %v", m.session.ID, label, err)
		m.SetError(err)
		return nil
	}
	return m.SelectIndex(idx)
}

// SelectIndex selects the topic at sidebar position idx (0-based).
func (m *Model) SelectIndex(idx int) tea.Cmd {
	labels := m.nav.Labels()
	if idx < 0 || idx >= len(labels) {
		return nil
	}
	if idx == m.cursor && labels[idx] == m.session.Selection {
		return nil
	}
	prev, prevCursor := m.session.Selection, m.cursor
	m.cursor = idx
	m.session.Selection = labels[idx]
	if err := m.renderSelection(); err != nil {
		m.cursor = prevCursor
		m.session.Selection = prev
		return nil
	}
	log.Printf("session=%s select topic=%q prev=%q", m.session.ID, m.session.Selection, prev)
	m.SetStatus(fmt.Sprintf("%d/%d %s", idx+1, len(labels), m.session.Selection))
	return nil
}

func (m *Model) ToggleSidebar() {
	m.sidebarHidden = !m.sidebarHidden
	if m.sidebarHidden {
		m.focus = FocusContent
	}
	m.layout()
	m.rerenderIfResized()
}

func (m *Model) ToggleFocus() {
	if m.sidebarHidden {
		m.focus = FocusContent
		return
	}
	if m.focus == FocusSidebar {
		m.focus = FocusContent
	} else {
		m.focus = FocusSidebar
	}
}

func (m *Model) ScrollTop() {
	m.viewport.GotoTop()
}

func (m *Model) ScrollBottom() {
	m.viewport.GotoBottom()
}

func (m *Model) ScrollBy(lines int) {
	m.viewport.SetYOffset(m.viewport.YOffset + lines)
}

// ScrollColumns moves the content sideways, negative cols to the left.
// Code blocks are not wrapped, so long lines are read this way.
func (m *Model) ScrollColumns(cols int) {
	if cols < 0 {
		m.viewport.ScrollLeft(-cols)
		return
	}
	m.viewport.ScrollRight(cols)
}
