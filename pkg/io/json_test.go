package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/buildgraph/bzlgen/pkg/dag"
)

func buildGraph(t *testing.T) *dag.Graph {
	t.Helper()
	g := dag.New()
	nodes := []dag.Node{
		{ID: "core", Meta: dag.Metadata{"kind": "library"}},
		{ID: "app", Meta: dag.Metadata{"kind": "binary"}},
	}
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.AddEdge(dag.Edge{From: "app", To: "core"}); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestWriteReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(buildGraph(t), &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}

	if got.NodeCount() != 2 || got.EdgeCount() != 1 {
		t.Errorf("round trip: %d nodes, %d edges", got.NodeCount(), got.EdgeCount())
	}
	app, ok := got.Node("app")
	if !ok {
		t.Fatal("node app missing after round trip")
	}
	if app.Meta["kind"] != "binary" {
		t.Errorf("app kind = %v after round trip", app.Meta["kind"])
	}
}

func TestReadJSONMalformed(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader("{not json")); err == nil {
		t.Error("ReadJSON() should fail on malformed input")
	}
}

func TestReadJSONUnknownEdgeEndpoint(t *testing.T) {
	input := `{"nodes": [{"id": "a"}], "edges": [{"from": "a", "to": "ghost"}]}`
	_, err := ReadJSON(strings.NewReader(input))
	if err == nil {
		t.Fatal("ReadJSON() should reject edges to unknown nodes")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error should name the edge: %v", err)
	}
}

func TestReadJSONCycle(t *testing.T) {
	input := `{
	  "nodes": [{"id": "a"}, {"id": "b"}],
	  "edges": [{"from": "a", "to": "b"}, {"from": "b", "to": "a"}]
	}`
	if _, err := ReadJSON(strings.NewReader(input)); err == nil {
		t.Error("ReadJSON() should reject cyclic graphs")
	}
}

func TestReadJSONDuplicateNode(t *testing.T) {
	input := `{"nodes": [{"id": "a"}, {"id": "a"}], "edges": []}`
	if _, err := ReadJSON(strings.NewReader(input)); err == nil {
		t.Error("ReadJSON() should reject duplicate node IDs")
	}
}
