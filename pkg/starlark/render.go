package starlark

import (
	"fmt"
	"strings"

	"github.com/buildgraph/bzlgen/pkg/layout"
)

// Render produces the textual form of a single expression within the
// default width budget. Rendering is deterministic: equal trees yield
// byte-identical output.
func Render(e Expr) string {
	return layout.Render(doc(e))
}

// RenderWidth renders an expression within the given width budget.
func RenderWidth(e Expr, width int) string {
	return layout.RenderWidth(doc(e), width)
}

// RenderFile renders a sequence of top-level statements. Statements are
// separated by hard line breaks (never commas) and the result ends with a
// trailing newline, ready to be written as a build-description file.
func RenderFile(stmts []Expr) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(Render(s))
		b.WriteString("\n")
	}
	return b.String()
}

// doc converts an expression into a layout document. The switch is
// exhaustive over the closed variant set; an unknown type is a programming
// error and panics.
func doc(e Expr) layout.Doc {
	switch e := e.(type) {
	case Str:
		return layout.Text(quote(e.Value))
	case Var:
		return layout.Text(e.Name)
	case List:
		if len(e.Items) == 0 {
			return layout.Text("[]")
		}
		return layout.Group("[", "]", ",", docs(e.Items)...)
	case BinOp:
		return layout.Join(" "+e.Op, doc(e.Left), doc(e.Right))
	case Assign:
		return layout.Concat(layout.Text(e.Name+" = "), doc(e.Value))
	case Call:
		if len(e.Args) == 0 {
			return layout.Text(e.Name + "()")
		}
		args := make([]layout.Doc, len(e.Args))
		for i, a := range e.Args {
			args[i] = layout.Concat(layout.Text(a.Key+" = "), doc(a.Value))
		}
		return layout.Group(e.Name+"(", ")", ",", args...)
	case Load:
		items := append([]layout.Doc{doc(e.Module)}, docs(e.Symbols)...)
		return layout.Group("load(", ")", ",", items...)
	default:
		panic(fmt.Sprintf("starlark: unknown expression type %T", e))
	}
}

func docs(exprs []Expr) []layout.Doc {
	out := make([]layout.Doc, len(exprs))
	for i, e := range exprs {
		out[i] = doc(e)
	}
	return out
}

// quoteEscaper rewrites the characters that would break a single-quoted
// literal. All replacements happen in a single pass, so a backslash
// introduced for one character is never re-escaped by another rule.
var quoteEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
)

// quote wraps a raw string in single quotes, escaping the delimiter,
// backslashes, and raw newlines. No other characters are altered.
func quote(s string) string {
	return "'" + quoteEscaper.Replace(s) + "'"
}
