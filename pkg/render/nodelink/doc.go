// Package nodelink renders dependency graphs as node-link diagrams.
//
// # Overview
//
// The graph command uses this package to visualize a project's module
// dependency graph: modules and external artifacts appear as boxes,
// dependency edges as arrows. Binaries are drawn bold and artifacts
// dashed, so the shape of the build is visible at a glance.
//
// # Usage
//
// Convert a graph to DOT, then render:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(dot)
//
// The DOT source can also be saved as-is and processed with external
// Graphviz tools.
//
// # Dependencies
//
// SVG rendering happens in-process via [github.com/goccy/go-graphviz].
// PDF and PNG conversion shell out to rsvg-convert (librsvg).
package nodelink
