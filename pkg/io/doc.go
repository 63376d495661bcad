// Package io provides JSON import and export for dependency graphs.
//
// # Overview
//
// The graph command can emit the module dependency graph as JSON for
// external tooling, and any directed acyclic graph in the same format
// can be read back. The format is two arrays:
//
//	{
//	  "nodes": [
//	    {"id": "app", "meta": {"kind": "binary"}},
//	    {"id": "core", "meta": {"kind": "library"}}
//	  ],
//	  "edges": [
//	    {"from": "app", "to": "core"}
//	  ]
//	}
//
// Node metadata is freeform; bzlgen sets "kind" (library, binary,
// artifact) and "coordinate" for external artifacts. Import validates
// DAG constraints, so a round trip through export and import yields an
// equivalent graph.
package io
