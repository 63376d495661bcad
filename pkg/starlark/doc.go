// Package starlark models the subset of the Starlark build language that
// bzlgen emits, and renders it as build-description text.
//
// # Overview
//
// The package has two halves. The expression model is a closed set of
// [Expr] variants (calls with keyword arguments, string literals, lists,
// infix operations, assignments, variable references, load statements)
// that represent buildable syntax fragments. The renderer is a pure
// function from an expression tree to laid-out text, using the width-aware
// primitives in [github.com/buildgraph/bzlgen/pkg/layout].
//
// # Expression Model
//
// Expressions are plain data. The model performs no validation: an empty
// call name or a load with no symbols is representable and renders as-is.
// Deciding whether a tree is a meaningful build rule is the caller's job
// (usually [github.com/buildgraph/bzlgen/pkg/rules]).
//
// Trees are constructed once, rendered once, and discarded. Nothing in
// this package mutates an expression after construction, so values can be
// shared freely across goroutines.
//
// # Rendering
//
// [Render] produces the textual form of a single expression; [RenderFile]
// joins top-level statements with newlines. String literals are
// single-quoted with embedded quotes, backslashes, and newlines escaped
// at render time; the model stores raw values. Call arguments and list
// items stay on one line when the statement fits the width budget and
// otherwise break one-per-line with indentation.
package starlark
