// Package render turns page documents into terminal text.
package render

import (
	"strings"

	"github.com/jask/devsheet/internal/page"
)

// Markdown converts doc into markdown source, one block per paragraph.
func Markdown(doc *page.Document) string {
	var b strings.Builder
	for i, blk := range doc.Blocks() {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch blk.Kind {
		case page.KindHeader:
			b.WriteString("# " + blk.Text)
		case page.KindSubheader:
			b.WriteString("## " + blk.Text)
		case page.KindCode:
			fence := codeFence(blk.Text)
			b.WriteString(fence + blk.Lang + "\n")
			b.WriteString(blk.Text)
			b.WriteString("\n" + fence)
		default:
			b.WriteString(blk.Text)
		}
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// codeFence picks a backtick fence longer than any run inside src.
func codeFence(src string) string {
	longest, run := 0, 0
	for _, r := range src {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	return strings.Repeat("`", max(3, longest+1))
}

// Plain renders documents as markdown source. Width is ignored.
type Plain struct{}

func (Plain) Render(doc *page.Document, _ int) (string, error) {
	return Markdown(doc), nil
}
