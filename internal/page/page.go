package page

import "strings"

type Kind int

const (
	KindHeader Kind = iota
	KindSubheader
	KindMarkdown
	KindCode
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindSubheader:
		return "subheader"
	case KindMarkdown:
		return "markdown"
	case KindCode:
		return "code"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Block is one display element. Lang is only set for code blocks.
type Block struct {
	Kind Kind
	Text string
	Lang string
}

// Surface receives display elements in order. Writing to a Surface cannot fail.
type Surface interface {
	Header(text string)
	Subheader(text string)
	Markdown(text string)
	Code(lang, src string)
	Text(text string)
}

type Document struct {
	blocks []Block
}

var _ Surface = (*Document)(nil)

func (d *Document) Header(text string) {
	d.blocks = append(d.blocks, Block{Kind: KindHeader, Text: strings.TrimSpace(text)})
}

func (d *Document) Subheader(text string) {
	d.blocks = append(d.blocks, Block{Kind: KindSubheader, Text: strings.TrimSpace(text)})
}

func (d *Document) Markdown(text string) {
	d.blocks = append(d.blocks, Block{Kind: KindMarkdown, Text: Dedent(text)})
}

func (d *Document) Code(lang, src string) {
	d.blocks = append(d.blocks, Block{Kind: KindCode, Text: Dedent(src), Lang: strings.TrimSpace(lang)})
}

func (d *Document) Text(text string) {
	d.blocks = append(d.blocks, Block{Kind: KindText, Text: text})
}

func (d *Document) Blocks() []Block {
	if d == nil {
		return nil
	}
	return append([]Block(nil), d.blocks...)
}

func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.blocks)
}

func (d *Document) Reset() {
	d.blocks = d.blocks[:0]
}

// String joins block texts with blank lines, without any markup.
func (d *Document) String() string {
	if d == nil {
		return ""
	}
	parts := make([]string, 0, len(d.blocks))
	for _, b := range d.blocks {
		parts = append(parts, b.Text)
	}
	return strings.Join(parts, "\n\n")
}

// Dedent drops a single leading newline, trailing blank lines and the
// whitespace prefix shared by every non-blank line.
func Dedent(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimPrefix(s, "\n")
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}
	prefix := ""
	first := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			prefix = indent
			first = false
			continue
		}
		prefix = commonPrefix(prefix, indent)
		if prefix == "" {
			break
		}
	}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = strings.TrimRight(strings.TrimPrefix(line, prefix), " \t")
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
