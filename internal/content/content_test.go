package content

import (
	"strings"
	"testing"

	"github.com/jask/devsheet/internal/catalog"
	"github.com/jask/devsheet/internal/page"
)

func TestRegistryMatchesTopicOrder(t *testing.T) {
	reg, err := Registry()
	if err != nil {
		t.Fatalf("Registry: %v", err)
	}
	if !reg.Sealed() {
		t.Fatalf("content registry should be sealed")
	}
	labels := reg.Labels()
	ids := Topics()
	if len(labels) != len(ids) || len(ids) != int(topicCount) {
		t.Fatalf("labels=%d ids=%d topicCount=%d", len(labels), len(ids), topicCount)
	}
	for i, id := range ids {
		if labels[i] != id.String() {
			t.Fatalf("label %d = %q, want %q", i, labels[i], id.String())
		}
	}
	if labels[0] != "Streamlit Basics" || labels[len(labels)-1] != "GitHub Integration Guide" {
		t.Fatalf("unexpected sidebar order: %v", labels)
	}
}

func TestEveryTopicRendersContent(t *testing.T) {
	reg, err := Registry()
	if err != nil {
		t.Fatalf("Registry: %v", err)
	}
	nav := catalog.NewNavigator(reg)
	for _, label := range nav.Labels() {
		doc, err := nav.Document(label)
		if err != nil {
			t.Fatalf("Document(%q): %v", label, err)
		}
		blocks := doc.Blocks()
		if len(blocks) < 2 {
			t.Fatalf("topic %q emitted %d blocks", label, len(blocks))
		}
		if blocks[0].Kind != page.KindHeader {
			t.Fatalf("topic %q should open with a header, got %s", label, blocks[0].Kind)
		}
		for i, b := range blocks {
			if strings.TrimSpace(b.Text) == "" {
				t.Fatalf("topic %q block %d (%s) is empty", label, i, b.Kind)
			}
		}
	}
}

func TestRenderingIsDeterministic(t *testing.T) {
	for _, id := range Topics() {
		var a, b page.Document
		Render(id, &a)
		Render(id, &b)
		if a.String() != b.String() {
			t.Fatalf("topic %s rendered differently on second pass", id)
		}
	}
}

func TestCodeBlocksAreDedented(t *testing.T) {
	var doc page.Document
	Render(GitHubCommands, &doc)
	for _, b := range doc.Blocks() {
		if b.Kind != page.KindCode {
			continue
		}
		if strings.HasPrefix(b.Text, "\t") || strings.HasPrefix(b.Text, " ") {
			t.Fatalf("code block keeps source indentation: %q", b.Text[:min(20, len(b.Text))])
		}
		if b.Lang != "bash" {
			t.Fatalf("git commands should be tagged bash, got %q", b.Lang)
		}
	}
}

func TestVSCodeShortcutsTableHasEveryShortcut(t *testing.T) {
	var doc page.Document
	Render(VSCodeShortcuts, &doc)
	text := doc.String()
	for _, s := range vscodeShortcutList {
		if !strings.Contains(text, s[0]) || !strings.Contains(text, s[1]) {
			t.Fatalf("missing shortcut %q / %q", s[0], s[1])
		}
	}
}

func TestTopicIDStringOutOfRange(t *testing.T) {
	if got := TopicID(-1).String(); got != "TopicID(-1)" {
		t.Fatalf("String() = %q", got)
	}
	if got := topicCount.String(); !strings.HasPrefix(got, "TopicID(") {
		t.Fatalf("String() = %q", got)
	}
}
