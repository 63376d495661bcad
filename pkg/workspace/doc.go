// Package workspace assembles complete build-description files from
// project metadata.
//
// # Overview
//
// The package sits between the project model and the filesystem: Generate
// maps a validated [project.Project] to a WORKSPACE file plus one BUILD
// file per module, and Write persists the result. All rule construction
// is delegated to [github.com/buildgraph/bzlgen/pkg/rules]; this package
// only decides which rules each file contains and in what order.
//
// # Determinism
//
// Generate is a pure function of its input. Artifacts are sorted by
// workspace name and modules keep their manifest order, so regenerating
// an unchanged project produces byte-identical files. The generate
// command's --check mode relies on this to detect stale output.
package workspace
