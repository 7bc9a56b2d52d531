package catalog

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jask/devsheet/internal/page"
)

// Renderer emits a topic's fixed display output.
type Renderer func(out page.Surface)

type Entry struct {
	Label  string
	Render Renderer
}

type Registry struct {
	entries []Entry
	index   map[string]int
	sealed  bool
}

func NewRegistry() *Registry {
	return &Registry{index: map[string]int{}}
}

func (r *Registry) Register(label string, render Renderer) error {
	if r.sealed {
		return ErrSealed
	}
	if strings.TrimSpace(label) == "" || render == nil {
		return fmt.Errorf("register %q: %w", label, ErrInvalidEntry)
	}
	if _, exists := r.index[label]; exists {
		return &DuplicateLabelError{Label: label}
	}
	r.index[label] = len(r.entries)
	r.entries = append(r.entries, Entry{Label: label, Render: render})
	return nil
}

// Seal makes the registry read-only. Later Register calls fail with ErrSealed.
func (r *Registry) Seal() {
	r.sealed = true
}

func (r *Registry) Sealed() bool {
	return r.sealed
}

func (r *Registry) Resolve(label string) (Renderer, error) {
	idx, ok := r.index[label]
	if !ok {
		return nil, &UnknownLabelError{Label: label, Suggestion: Suggest(r.Labels(), label)}
	}
	return r.entries[idx].Render, nil
}

// Labels returns the registered labels in registration order.
func (r *Registry) Labels() []string {
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Label)
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.entries)
}

// Index returns the position of label in registration order, or -1.
func (r *Registry) Index(label string) int {
	if idx, ok := r.index[label]; ok {
		return idx
	}
	return -1
}

// Find maps user input to a registered label. It accepts the exact label, a
// case-insensitive label, or the label's slug.
func (r *Registry) Find(query string) (string, bool) {
	if _, ok := r.index[query]; ok {
		return query, true
	}
	q := strings.TrimSpace(query)
	slug := Slug(q)
	for _, e := range r.entries {
		if strings.EqualFold(e.Label, q) || Slug(e.Label) == slug {
			return e.Label, true
		}
	}
	return "", false
}

// Slug lowercases label and joins its words with hyphens: "VS Code Shortcuts"
// becomes "vs-code-shortcuts".
func Slug(label string) string {
	var sb strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingDash = false
			sb.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return sb.String()
}
