package page

import (
	"strings"
	"testing"
)

func TestDocumentKeepsCallOrder(t *testing.T) {
	var d Document
	d.Header("Title")
	d.Subheader("Sub")
	d.Markdown("- one")
	d.Code("bash", "git status")
	d.Text("plain")

	blocks := d.Blocks()
	want := []Kind{KindHeader, KindSubheader, KindMarkdown, KindCode, KindText}
	if len(blocks) != len(want) {
		t.Fatalf("block count = %d, want %d", len(blocks), len(want))
	}
	for i, k := range want {
		if blocks[i].Kind != k {
			t.Fatalf("block %d kind = %s, want %s", i, blocks[i].Kind, k)
		}
	}
	if blocks[3].Lang != "bash" {
		t.Fatalf("code lang = %q, want bash", blocks[3].Lang)
	}
}

func TestBlocksReturnsCopy(t *testing.T) {
	var d Document
	d.Header("A")
	b := d.Blocks()
	b[0].Text = "mutated"
	if d.Blocks()[0].Text != "A" {
		t.Fatalf("Blocks should not expose internal storage")
	}
}

func TestResetClearsDocument(t *testing.T) {
	var d Document
	d.Header("A")
	d.Reset()
	if d.Len() != 0 {
		t.Fatalf("len after reset = %d", d.Len())
	}
}

func TestDedentStripsCommonIndent(t *testing.T) {
	in := `
    # Initialize a new Git repository
    git init

      nested
    `
	got := Dedent(in)
	want := "# Initialize a new Git repository\ngit init\n\n  nested"
	if got != want {
		t.Fatalf("Dedent mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestDedentLeavesFlushTextAlone(t *testing.T) {
	if got := Dedent("a\n  b"); got != "a\n  b" {
		t.Fatalf("Dedent changed flush text: %q", got)
	}
	if got := Dedent("\n\n   \n"); got != "" {
		t.Fatalf("Dedent of blank input = %q, want empty", got)
	}
}

func TestStringJoinsTexts(t *testing.T) {
	var d Document
	d.Header("H")
	d.Code("", "x := 1")
	if got := d.String(); !strings.Contains(got, "H") || !strings.Contains(got, "x := 1") {
		t.Fatalf("String() = %q", got)
	}
}
