// Package dag provides the directed graph bzlgen builds over project
// modules.
//
// # Overview
//
// Nodes are modules (or the external artifacts they depend on) and edges
// point from a module to its dependencies. The graph drives two things:
// the deterministic order in which BUILD files are emitted, and the
// node-link visualization produced by the graph command.
//
// # Basic Usage
//
// Create a graph with [New], add nodes with [Graph.AddNode] and edges with
// [Graph.AddEdge]:
//
//	g := dag.New()
//	g.AddNode(dag.Node{ID: "app"})
//	g.AddNode(dag.Node{ID: "core"})
//	g.AddEdge(dag.Edge{From: "app", To: "core"})
//
// Use [Graph.Validate] to detect dependency cycles before generation, and
// [Graph.TopoSort] for a deterministic dependency-first ordering.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Callers must
// synchronize access if multiple goroutines read or modify the same graph.
package dag
