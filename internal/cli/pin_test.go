package cli

import (
	"testing"

	"github.com/buildgraph/bzlgen/pkg/project"
)

func TestPinCandidates(t *testing.T) {
	artifacts := []project.Artifact{
		{Name: "guava", Coordinate: "com.google.guava:guava:19.0"},
		{Name: "scalaz", Coordinate: "org.scalaz:scalaz-core_2.11"},
	}

	unpinned := pinCandidates(artifacts, false)
	if len(unpinned) != 1 || unpinned[0].Name != "scalaz" {
		t.Errorf("pinCandidates(repin=false) = %v, want just scalaz", unpinned)
	}

	all := pinCandidates(artifacts, true)
	if len(all) != 2 {
		t.Errorf("pinCandidates(repin=true) = %d artifacts, want 2", len(all))
	}
}

func TestSetCoordinate(t *testing.T) {
	p := &project.Project{
		Artifacts: []project.Artifact{
			{Name: "guava", Coordinate: "com.google.guava:guava"},
			{Name: "config", Coordinate: "com.typesafe:config"},
		},
	}

	setCoordinate(p, "guava", "com.google.guava:guava:19.0")

	if got := p.Artifacts[0].Coordinate; got != "com.google.guava:guava:19.0" {
		t.Errorf("guava coordinate = %q", got)
	}
	if got := p.Artifacts[1].Coordinate; got != "com.typesafe:config" {
		t.Errorf("config coordinate changed unexpectedly: %q", got)
	}
}
