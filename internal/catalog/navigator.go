package catalog

import "github.com/jask/devsheet/internal/page"

// Navigator is the single dispatch point: it resolves a selection and runs
// the matching renderer. The selection is always passed in by the caller.
type Navigator struct {
	reg *Registry
}

func NewNavigator(reg *Registry) *Navigator {
	return &Navigator{reg: reg}
}

func (n *Navigator) Labels() []string {
	return n.reg.Labels()
}

func (n *Navigator) Registry() *Registry {
	return n.reg
}

func (n *Navigator) Show(selection string, out page.Surface) error {
	render, err := n.reg.Resolve(selection)
	if err != nil {
		return err
	}
	render(out)
	return nil
}

// Document renders selection into a fresh page.Document.
func (n *Navigator) Document(selection string) (*page.Document, error) {
	doc := &page.Document{}
	if err := n.Show(selection, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
