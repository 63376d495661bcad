package layout

import "strings"

const (
	// DefaultWidth is the line-width budget used by [Render].
	DefaultWidth = 80

	// indentWidth is the number of spaces added per indentation level
	// when a group breaks across lines.
	indentWidth = 4
)

// Doc is a layout document. The set of implementations is closed:
// use [Text], [Concat], and [Group] to construct documents.
type Doc interface {
	isDoc()
}

// text is an atomic string. It is never split, regardless of width.
type text struct {
	s string
}

// concat renders its children in sequence with nothing between them.
type concat struct {
	docs []Doc
}

// group renders items between open and close tokens, separated by sep.
// Flat: open + item + sep + " " + item + ... + close on one line.
// Broken: open, then one item per line at one added indent level with sep
// kept at the end of each non-final line, then close at the outer indent.
type group struct {
	open  string
	close string
	sep   string
	items []Doc
}

// join renders items separated by sep plus a space on one line. When the
// flat form does not fit, the separator ends the line instead and every
// continuation item is placed on its own line at one added indent level.
// Unlike group there are no bracket tokens and no closing line.
type join struct {
	sep   string
	items []Doc
}

func (text) isDoc()   {}
func (concat) isDoc() {}
func (group) isDoc()  {}
func (join) isDoc()   {}

// Text creates an atomic text document.
func Text(s string) Doc { return text{s: s} }

// Concat joins documents with no separator.
func Concat(docs ...Doc) Doc { return concat{docs: docs} }

// Group creates a bracketed, separated group of items. The open and close
// tokens hug the content (tight brackets). An empty item list renders as
// open immediately followed by close.
func Group(open, close, sep string, items ...Doc) Doc {
	return group{open: open, close: close, sep: sep, items: items}
}

// Join creates a bracket-free separated sequence. The flat form separates
// items with sep followed by a space; the broken form keeps sep at the end
// of each line and indents continuation items one level.
func Join(sep string, items ...Doc) Doc {
	return join{sep: sep, items: items}
}

// Render lays out a document within [DefaultWidth] columns.
func Render(d Doc) string { return RenderWidth(d, DefaultWidth) }

// RenderWidth lays out a document within the given number of columns.
// Atomic text longer than the width is emitted as-is; the width only
// controls where groups break.
func RenderWidth(d Doc, width int) string {
	p := &printer{width: width}
	p.print(d)
	return p.b.String()
}

type printer struct {
	b      strings.Builder
	width  int
	col    int
	indent int
}

func (p *printer) print(d Doc) {
	switch d := d.(type) {
	case text:
		p.write(d.s)
	case concat:
		for _, c := range d.docs {
			p.print(c)
		}
	case group:
		if len(d.items) == 0 || p.col+flatWidth(d) <= p.width {
			p.write(flatten(d))
			return
		}
		p.write(d.open)
		p.indent++
		for i, item := range d.items {
			p.newline()
			p.print(item)
			if i < len(d.items)-1 {
				p.write(d.sep)
			}
		}
		p.indent--
		p.newline()
		p.write(d.close)
	case join:
		if len(d.items) == 0 {
			return
		}
		if p.col+flatWidth(d) <= p.width {
			p.write(flatten(d))
			return
		}
		p.indent++
		for i, item := range d.items {
			if i > 0 {
				p.newline()
			}
			p.print(item)
			if i < len(d.items)-1 {
				p.write(d.sep)
			}
		}
		p.indent--
	}
}

func (p *printer) write(s string) {
	p.b.WriteString(s)
	p.col += len(s)
}

func (p *printer) newline() {
	p.b.WriteString("\n")
	pad := strings.Repeat(" ", indentWidth*p.indent)
	p.b.WriteString(pad)
	p.col = len(pad)
}

// flatten renders a document as if it always fit on one line.
func flatten(d Doc) string {
	switch d := d.(type) {
	case text:
		return d.s
	case concat:
		var b strings.Builder
		for _, c := range d.docs {
			b.WriteString(flatten(c))
		}
		return b.String()
	case group:
		return d.open + flatJoin(d.items, d.sep) + d.close
	case join:
		return flatJoin(d.items, d.sep)
	}
	return ""
}

func flatJoin(items []Doc, sep string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = flatten(item)
	}
	return strings.Join(parts, sep+" ")
}

func flatWidth(d Doc) int { return len(flatten(d)) }
