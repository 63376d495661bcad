// Package rules assembles the common Bazel rule shapes bzlgen emits.
//
// Each builder is a pure function from caller-supplied metadata (target
// names, dependency labels, source lists, Maven coordinates, versions) to
// an expression tree from [github.com/buildgraph/bzlgen/pkg/starlark].
// Builders never validate their inputs and never fail: an empty name or a
// dangling dependency label passes through unchanged and shows up verbatim
// in the rendered output. Input validation belongs to the caller (see
// [github.com/buildgraph/bzlgen/pkg/project]).
package rules
