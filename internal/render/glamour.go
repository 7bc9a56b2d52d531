package render

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/jask/devsheet/internal/page"
)

var ErrUnknownStyle = errors.New("render: unknown style")

const defaultWidth = 80

const autoStyle = "auto"

// styleNames are the styles bundled with glamour.
var styleNames = []string{autoStyle, "dark", "light", "notty", "ascii", "dracula", "tokyo-night", "pink"}

// Styles lists the accepted style names.
func Styles() []string {
	return slices.Clone(styleNames)
}

// ValidStyle reports whether name is an accepted style.
func ValidStyle(name string) bool {
	return slices.Contains(styleNames, strings.ToLower(strings.TrimSpace(name)))
}

// Renderer renders documents through glamour. One TermRenderer is kept per
// wrap width since the window width changes rarely.
type Renderer struct {
	style string

	mu    sync.Mutex
	byWid map[int]*glamour.TermRenderer
}

func New(style string) (*Renderer, error) {
	style = strings.ToLower(strings.TrimSpace(style))
	if style == "" {
		style = autoStyle
	}
	if !ValidStyle(style) {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownStyle, style, strings.Join(styleNames, ", "))
	}
	return &Renderer{style: style, byWid: make(map[int]*glamour.TermRenderer)}, nil
}

func (r *Renderer) Style() string { return r.style }

func (r *Renderer) Render(doc *page.Document, width int) (string, error) {
	if width <= 0 {
		width = defaultWidth
	}
	tr, err := r.termRenderer(width)
	if err != nil {
		return "", err
	}
	out, err := tr.Render(Markdown(doc))
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func (r *Renderer) termRenderer(width int) (*glamour.TermRenderer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tr, ok := r.byWid[width]; ok {
		return tr, nil
	}
	styleOpt := glamour.WithStandardStyle(r.style)
	if r.style == autoStyle {
		styleOpt = glamour.WithAutoStyle()
	}
	tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("glamour renderer (style=%s width=%d): %w", r.style, width, err)
	}
	r.byWid[width] = tr
	return tr, nil
}

// Cached reports how many widths have a renderer built.
func (r *Renderer) Cached() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byWid)
}
