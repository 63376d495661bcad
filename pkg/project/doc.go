// Package project models the build-relevant metadata of a Scala project:
// its modules, their dependency edges and source sets, and the external
// Maven artifacts the workspace fetches.
//
// # Overview
//
// A [Project] is loaded from a bzlgen.toml manifest (see [Load]) or
// assembled programmatically. It is plain data: the rule builders in
// [github.com/buildgraph/bzlgen/pkg/rules] consume it field by field and
// perform no validation of their own, so [Project.Validate] is the single
// place where malformed metadata is rejected.
//
// # Labels
//
// Modules are addressed by Bazel labels of the form //name:name, and
// external artifacts by //external:name. [Project.Graph] resolves these
// labels into a dependency graph for ordering and visualization.
package project
