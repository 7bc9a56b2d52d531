package catalog

import (
	"errors"
	"testing"

	"github.com/jask/devsheet/internal/page"
)

func TestNavigatorEndToEnd(t *testing.T) {
	nav := NewNavigator(newABRegistry(t))

	docA, err := nav.Document("A")
	if err != nil {
		t.Fatalf("select A: %v", err)
	}
	if got := docA.String(); got != "A-content" {
		t.Fatalf("A output = %q, want exactly A-content", got)
	}

	docB, err := nav.Document("B")
	if err != nil {
		t.Fatalf("select B: %v", err)
	}
	if got := docB.String(); got != "B-content" {
		t.Fatalf("B output = %q, want exactly B-content", got)
	}

	_, err = nav.Document("C")
	var unknown *UnknownLabelError
	if !errors.As(err, &unknown) {
		t.Fatalf("select C: expected UnknownLabelError, got %v", err)
	}
}

func TestNavigatorShowDoesNotWriteOnError(t *testing.T) {
	nav := NewNavigator(newABRegistry(t))
	var doc page.Document
	if err := nav.Show("missing", &doc); err == nil {
		t.Fatalf("expected error")
	}
	if doc.Len() != 0 {
		t.Fatalf("surface should be untouched on unknown selection")
	}
}

func TestEveryNavigatorLabelResolves(t *testing.T) {
	nav := NewNavigator(newABRegistry(t))
	for _, label := range nav.Labels() {
		var doc page.Document
		if err := nav.Show(label, &doc); err != nil {
			t.Fatalf("Show(%q): %v", label, err)
		}
		if doc.Len() == 0 {
			t.Fatalf("Show(%q) emitted nothing", label)
		}
	}
}
