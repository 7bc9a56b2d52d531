package core

import (
	"log"

	"github.com/jask/devsheet/widgets"
)

// columnStep is how far left and right move the content, in columns.
const columnStep = 8

// renderSelection runs the selected topic's renderer and loads the result
// into the viewport, scrolled to the top.
func (m *Model) renderSelection() error {
	doc, err := m.nav.Document(m.session.Selection)
	if err != nil {
		log.Printf("session=%s render topic=%q: %v", m.session.ID, m.session.Selection, err)
		m.SetError(err)
		return err
	}
	m.doc = doc
	m.loadViewport()
	m.viewport.GotoTop()
	m.viewport.SetXOffset(0)
	return nil
}

// rerenderIfResized re-renders the current document when the render width
// changed, keeping the scroll offset where possible.
func (m *Model) rerenderIfResized() {
	if m.doc == nil || m.renderWidth() == m.renderedWidth {
		return
	}
	offset := m.viewport.YOffset
	m.loadViewport()
	m.viewport.SetYOffset(offset)
}

func (m *Model) loadViewport() {
	width := m.renderWidth()
	out, err := m.renderer.Render(m.doc, width)
	if err != nil {
		log.Printf("session=%s render topic=%q width=%d: %v", m.session.ID, m.session.Selection, width, err)
		m.SetError(err)
		out = m.doc.String()
	}
	m.viewport.SetContent(out)
	m.renderedWidth = width
}

// layout sizes the viewport to the content pane.
func (m *Model) layout() {
	bodyHeight := max(3, m.height-chromeHeight)
	w, h := widgets.InnerSize(m.contentPaneWidth(), bodyHeight)
	m.viewport.Width = w
	m.viewport.Height = h
}

func (m Model) sidebarPaneWidth() int {
	if m.sidebarHidden {
		return 0
	}
	return max(0, min(m.sidebarWidth, m.width-minContentWidth))
}

func (m Model) contentPaneWidth() int {
	return max(1, m.width-m.sidebarPaneWidth())
}

func (m Model) renderWidth() int {
	w := m.viewport.Width
	if m.wrapWidth > 0 && m.wrapWidth < w {
		return m.wrapWidth
	}
	return w
}
