// Package pkg provides the core libraries for bzlgen build-file generation.
//
// # Overview
//
// bzlgen turns structured project metadata into the build-description
// files a Bazel build of a Scala project needs. The pkg directory is
// organized around the generation pipeline:
//
//	bzlgen.toml manifest (or pom.xml)
//	         ↓
//	    [project] package (model + validation)
//	         ↓
//	    [rules] package (rule shapes as expression trees)
//	         ↓
//	    [starlark] package (expression model + rendering)
//	         ↓
//	    [layout] package (width-aware line breaking)
//	         ↓
//	    WORKSPACE and BUILD files via [workspace]
//
// Supporting packages: [dag] models the module dependency graph,
// [render/nodelink] and [io] visualize and serialize it,
// [integrations/maven] resolves coordinates against Maven Central with
// [httputil] caching, and [errors] carries coded errors across the CLI
// boundary.
//
// # Quick Start
//
//	p, err := project.Load("bzlgen.toml")
//	if err != nil {
//	    return err
//	}
//	files, err := workspace.Generate(p)
//	if err != nil {
//	    return err
//	}
//	err = workspace.Write(".", files)
//
// # Determinism
//
// Generation is a pure function of the manifest: expression trees render
// through a deterministic layout engine, artifacts sort by name, and no
// map iteration order reaches the output. Regenerating an unchanged
// project yields byte-identical files, which the generate command's
// --check mode relies on.
package pkg
