package project

import (
	"strings"

	"github.com/buildgraph/bzlgen/pkg/dag"
	"github.com/buildgraph/bzlgen/pkg/errors"
)

// Defaults applied by Load when the manifest omits the fields.
const (
	DefaultRepository = "https://repo1.maven.org/maven2/"
	DefaultVisibility = "//visibility:public"
)

// Module is one buildable unit of the project. A module with a MainClass
// is emitted as a scala_binary, otherwise as a scala_library.
type Module struct {
	Name       string   // Target name, unique within the project
	Deps       []string // Dependency labels (//name:name or //external:name)
	Srcs       []string // Source files relative to the module directory
	Visibility string   // Visibility label (libraries only)
	MainClass  string   // JVM entry point; non-empty marks a binary
}

// IsBinary reports whether the module is emitted as a scala_binary.
func (m Module) IsBinary() bool { return m.MainClass != "" }

// Label returns the module's Bazel label (//name:name).
func (m Module) Label() string { return "//" + m.Name + ":" + m.Name }

// Artifact is an external Maven artifact fetched into the workspace.
type Artifact struct {
	Name       string // Workspace name (e.g., "com_google_guava_guava")
	Coordinate string // "group:artifact" or pinned "group:artifact:version"
}

// Pinned reports whether the coordinate carries an explicit version.
func (a Artifact) Pinned() bool {
	return strings.Count(a.Coordinate, ":") >= 2
}

// GroupArtifact returns the coordinate without any version component.
func (a Artifact) GroupArtifact() string {
	parts := strings.SplitN(a.Coordinate, ":", 3)
	if len(parts) < 2 {
		return a.Coordinate
	}
	return parts[0] + ":" + parts[1]
}

// Label returns the bind alias label for the artifact (//external:name).
func (a Artifact) Label() string { return "//external:" + a.Name }

// Project is the complete metadata set one generation run consumes.
type Project struct {
	RulesVersion string // rules_scala version for the workspace preamble
	Repository   string // Maven repository URL for artifact fetches
	Modules      []Module
	Artifacts    []Artifact
}

// Validate checks the project for the problems that would produce
// build-description text no build tool accepts: duplicate or empty names,
// dependency labels that resolve to nothing, and binaries without a main
// class source of truth. Returns a coded error from
// [github.com/buildgraph/bzlgen/pkg/errors] describing the first problem
// found.
func (p *Project) Validate() error {
	if p.RulesVersion == "" {
		return errors.New(errors.ErrCodeInvalidManifest, "rules-version is required")
	}

	known := make(map[string]bool)
	for _, m := range p.Modules {
		if m.Name == "" {
			return errors.New(errors.ErrCodeInvalidModule, "module with empty name")
		}
		if strings.ContainsAny(m.Name, "/:") {
			return errors.New(errors.ErrCodeInvalidModule, "module name %q must not contain '/' or ':'", m.Name)
		}
		if known[m.Label()] {
			return errors.New(errors.ErrCodeInvalidManifest, "module %q declared twice", m.Name)
		}
		known[m.Label()] = true
	}
	for _, a := range p.Artifacts {
		if a.Name == "" {
			return errors.New(errors.ErrCodeInvalidArtifact, "artifact with empty name")
		}
		if !strings.Contains(a.Coordinate, ":") {
			return errors.New(errors.ErrCodeInvalidArtifact,
				"artifact %q coordinate %q is not group:artifact", a.Name, a.Coordinate)
		}
		if known[a.Label()] {
			return errors.New(errors.ErrCodeInvalidManifest, "artifact %q declared twice", a.Name)
		}
		known[a.Label()] = true
	}

	for _, m := range p.Modules {
		for _, dep := range m.Deps {
			if !known[dep] {
				return errors.New(errors.ErrCodeInvalidManifest,
					"module %q depends on unknown target %q", m.Name, dep)
			}
		}
	}
	return nil
}

// Graph builds the dependency graph over modules and artifacts. Node
// metadata carries a "kind" key ("library", "binary", or "artifact") for
// rendering. Call [Project.Validate] first; Graph assumes dependency
// labels resolve.
func (p *Project) Graph() (*dag.Graph, error) {
	g := dag.New()
	byLabel := make(map[string]string) // label -> node ID

	for _, m := range p.Modules {
		kind := "library"
		if m.IsBinary() {
			kind = "binary"
		}
		if err := g.AddNode(dag.Node{ID: m.Name, Meta: dag.Metadata{"kind": kind}}); err != nil {
			return nil, err
		}
		byLabel[m.Label()] = m.Name
	}
	for _, a := range p.Artifacts {
		meta := dag.Metadata{"kind": "artifact", "coordinate": a.Coordinate}
		if err := g.AddNode(dag.Node{ID: a.Name, Meta: meta}); err != nil {
			return nil, err
		}
		byLabel[a.Label()] = a.Name
	}

	for _, m := range p.Modules {
		for _, dep := range m.Deps {
			to, ok := byLabel[dep]
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidManifest,
					"module %q depends on unknown target %q", m.Name, dep)
			}
			if err := g.AddEdge(dag.Edge{From: m.Name, To: to}); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Module returns the module with the given name and true, or a zero
// Module and false if not found.
func (p *Project) Module(name string) (Module, bool) {
	for _, m := range p.Modules {
		if m.Name == name {
			return m, true
		}
	}
	return Module{}, false
}
