package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/devsheet/internal/page"
)

func sampleDoc() *page.Document {
	doc := &page.Document{}
	doc.Header("Git")
	doc.Subheader("Basics")
	doc.Markdown("Use **git** daily.")
	doc.Code("bash", "git init\ngit status")
	doc.Text("done")
	return doc
}

func TestMarkdownSource(t *testing.T) {
	got := Markdown(sampleDoc())
	want := "# Git\n\n## Basics\n\nUse **git** daily.\n\n```bash\ngit init\ngit status\n```\n\ndone\n"
	if got != want {
		t.Fatalf("Markdown() =\n%q\nwant\n%q", got, want)
	}
}

func TestMarkdownEmptyDocument(t *testing.T) {
	if got := Markdown(&page.Document{}); got != "" {
		t.Fatalf("expected empty source, got %q", got)
	}
}

func TestCodeFenceOutgrowsBackticks(t *testing.T) {
	doc := &page.Document{}
	doc.Code("markdown", "```python\nprint(1)\n```")
	got := Markdown(doc)
	if !strings.HasPrefix(got, "````markdown\n") || !strings.HasSuffix(got, "\n````\n") {
		t.Fatalf("fence not lengthened: %q", got)
	}
}

func TestPlainIgnoresWidth(t *testing.T) {
	doc := sampleDoc()
	a, _ := Plain{}.Render(doc, 10)
	b, _ := Plain{}.Render(doc, 200)
	if a != b {
		t.Fatalf("plain output should not depend on width")
	}
}

func TestNewRejectsUnknownStyle(t *testing.T) {
	_, err := New("neon")
	if !errors.Is(err, ErrUnknownStyle) {
		t.Fatalf("expected ErrUnknownStyle, got %v", err)
	}
	r, err := New("  ")
	if err != nil {
		t.Fatalf("blank style should default: %v", err)
	}
	if r.Style() != "auto" {
		t.Fatalf("default style = %q", r.Style())
	}
}

func TestRendererCachesPerWidth(t *testing.T) {
	r, err := New("notty")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	doc := sampleDoc()
	for _, w := range []int{40, 40, 60} {
		out, err := r.Render(doc, w)
		if err != nil {
			t.Fatalf("Render(%d): %v", w, err)
		}
		if !strings.Contains(ansi.Strip(out), "git init") {
			t.Fatalf("code sample missing from output:\n%s", out)
		}
	}
	if r.Cached() != 2 {
		t.Fatalf("expected 2 cached renderers, got %d", r.Cached())
	}
}

func TestRendererWrapsToWidth(t *testing.T) {
	r, err := New("ascii")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	doc := &page.Document{}
	doc.Markdown(strings.Repeat("word ", 60))
	out, err := r.Render(doc, 30)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	narrow := strings.Count(strings.TrimSpace(ansi.Strip(out)), "\n")
	wide, err := r.Render(doc, 400)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if wideLines := strings.Count(strings.TrimSpace(ansi.Strip(wide)), "\n"); narrow <= wideLines {
		t.Fatalf("narrow render should wrap onto more lines: %d vs %d", narrow, wideLines)
	}
}

func TestValidStyle(t *testing.T) {
	for _, s := range Styles() {
		if !ValidStyle(s) {
			t.Fatalf("%q should be valid", s)
		}
	}
	if !ValidStyle(" Dark ") {
		t.Fatalf("style names are case-insensitive")
	}
	if ValidStyle("solarized") {
		t.Fatalf("solarized is not a bundled style")
	}
}
