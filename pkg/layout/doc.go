// Package layout provides width-aware document layout primitives for
// rendering tree-shaped text.
//
// # Overview
//
// A [Doc] is a tree of atomic text, concatenations, and bracketed groups.
// Groups carry a separator and render on a single line when the flattened
// form fits the configured width; otherwise every element goes on its own
// indented line. The decision is made per group during rendering, so inner
// groups can stay flat inside a broken outer group.
//
// # Usage
//
//	d := layout.Group("[", "]", ",",
//	    layout.Text("'a'"),
//	    layout.Text("'b'"),
//	)
//	layout.Render(d) // ['a', 'b']
//
// The bracket tokens hug the content: no padding is inserted between the
// open token and the first element or between the last element and the
// close token on the flat path.
//
// # Determinism
//
// Rendering is a pure function of the document and the width. Equal inputs
// produce byte-identical output.
package layout
