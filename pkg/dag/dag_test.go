package dag

import (
	"errors"
	"slices"
	"testing"
)

func build(t *testing.T, nodes []string, edges [][2]string) *Graph {
	t.Helper()
	g := New()
	for _, id := range nodes {
		if err := g.AddNode(Node{ID: id}); err != nil {
			t.Fatalf("AddNode(%q): %v", id, err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(Edge{From: e[0], To: e[1]}); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}
	return g
}

func TestAddNodeErrors(t *testing.T) {
	g := New()
	if err := g.AddNode(Node{}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(empty) = %v, want ErrInvalidNodeID", err)
	}
	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatalf("AddNode(a): %v", err)
	}
	if err := g.AddNode(Node{ID: "a"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("AddNode(dup) = %v, want ErrDuplicateNodeID", err)
	}
}

func TestAddEdgeErrors(t *testing.T) {
	g := build(t, []string{"a"}, nil)
	if err := g.AddEdge(Edge{From: "x", To: "a"}); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("AddEdge = %v, want ErrUnknownSourceNode", err)
	}
	if err := g.AddEdge(Edge{From: "a", To: "x"}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("AddEdge = %v, want ErrUnknownTargetNode", err)
	}
}

func TestChildrenAndParents(t *testing.T) {
	g := build(t, []string{"app", "core", "util"}, [][2]string{
		{"app", "core"}, {"app", "util"}, {"core", "util"},
	})

	if got := g.Children("app"); !slices.Equal(got, []string{"core", "util"}) {
		t.Errorf("Children(app) = %v", got)
	}
	if got := g.Parents("util"); !slices.Equal(got, []string{"app", "core"}) {
		t.Errorf("Parents(util) = %v", got)
	}
}

func TestValidateAcyclic(t *testing.T) {
	g := build(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateDetectsCycle(t *testing.T) {
	g := build(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})
	if err := g.Validate(); !errors.Is(err, ErrGraphHasCycle) {
		t.Errorf("Validate() = %v, want ErrGraphHasCycle", err)
	}
}

func TestTopoSortDependencyFirst(t *testing.T) {
	g := build(t, []string{"app", "core", "util"}, [][2]string{
		{"app", "core"}, {"core", "util"},
	})

	order, err := g.TopoSort()
	if err != nil {
		t.Fatalf("TopoSort(): %v", err)
	}
	if !slices.Equal(order, []string{"util", "core", "app"}) {
		t.Errorf("TopoSort() = %v, want [util core app]", order)
	}
}

func TestTopoSortDeterministicAcrossInsertionOrder(t *testing.T) {
	g1 := build(t, []string{"a", "b", "c"}, nil)
	g2 := build(t, []string{"c", "b", "a"}, nil)

	o1, err := g1.TopoSort()
	if err != nil {
		t.Fatal(err)
	}
	o2, err := g2.TopoSort()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(o1, o2) {
		t.Errorf("TopoSort not deterministic: %v vs %v", o1, o2)
	}
}

func TestTopoSortCycle(t *testing.T) {
	g := build(t, []string{"a", "b"}, [][2]string{{"a", "b"}, {"b", "a"}})
	if _, err := g.TopoSort(); !errors.Is(err, ErrGraphHasCycle) {
		t.Errorf("TopoSort() = %v, want ErrGraphHasCycle", err)
	}
}

func TestNodesInsertionOrder(t *testing.T) {
	g := build(t, []string{"z", "a", "m"}, nil)
	var ids []string
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	if !slices.Equal(ids, []string{"z", "a", "m"}) {
		t.Errorf("Nodes() order = %v, want insertion order", ids)
	}
}

func TestMetaInitialized(t *testing.T) {
	g := build(t, []string{"a"}, nil)
	n, ok := g.Node("a")
	if !ok || n.Meta == nil {
		t.Error("Node Meta should be initialized to an empty map")
	}
}
