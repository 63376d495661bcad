package workspace

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/buildgraph/bzlgen/pkg/errors"
	"github.com/buildgraph/bzlgen/pkg/project"
	"github.com/buildgraph/bzlgen/pkg/rules"
	"github.com/buildgraph/bzlgen/pkg/starlark"
)

// File is one generated build-description file, with a path relative to
// the workspace root.
type File struct {
	Path    string
	Content string
}

// Generate maps a validated project to its complete set of
// build-description files: one WORKSPACE at the root and one BUILD per
// module. BUILD files come out in dependency order (every module after
// the modules it depends on), so output is fully determined by the
// project value regardless of manifest declaration order; generating the
// same project twice yields identical files in identical order.
//
// Cyclic module dependencies cannot be expressed as build rules and
// produce an ErrCodeInvalidManifest error. Every artifact must carry a
// pinned coordinate, since maven_jar cannot fetch without a version.
// Unpinned artifacts produce an ErrCodeInvalidArtifact error naming the
// offender.
func Generate(p *project.Project) ([]File, error) {
	g, err := p.Graph()
	if err != nil {
		return nil, err
	}
	order, err := g.TopoSort()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "module dependencies form a cycle")
	}

	ws, err := workspaceFile(p)
	if err != nil {
		return nil, err
	}

	files := []File{{Path: "WORKSPACE", Content: ws}}
	for _, id := range order {
		m, ok := p.Module(id)
		if !ok {
			continue // artifact node, no BUILD file
		}
		files = append(files, File{
			Path:    filepath.Join(m.Name, "BUILD"),
			Content: buildFile(m),
		})
	}
	return files, nil
}

// Write persists generated files under dir, creating parent directories
// as needed. Partially written output is left in place on error; callers
// wanting all-or-nothing behavior should write to a scratch directory
// first.
func Write(dir string, files []File) error {
	for _, f := range files {
		if err := WriteFile(dir, f); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile persists a single generated file under dir.
func WriteFile(dir string, f File) error {
	path := filepath.Join(dir, f.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create directory for %s", f.Path)
	}
	if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", f.Path)
	}
	return nil
}

func workspaceFile(p *project.Project) (string, error) {
	stmts := rules.WorkspacePreamble(p.RulesVersion)

	sorted := make([]project.Artifact, len(p.Artifacts))
	copy(sorted, p.Artifacts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	for _, a := range sorted {
		if !a.Pinned() {
			return "", errors.New(errors.ErrCodeInvalidArtifact,
				"artifact %q is not pinned to a version; run pin first", a.Name)
		}
		stmts = append(stmts,
			rules.MavenJar(a.Name, a.Coordinate, p.Repository),
			rules.Bind(a.Name, "@"+a.Name+"//jar"),
		)
	}
	return starlark.RenderFile(stmts), nil
}

func buildFile(m project.Module) string {
	stmts := []starlark.Expr{rules.BuildFilePreamble()}
	if m.IsBinary() {
		stmts = append(stmts, rules.Binary(m.Name, m.Deps, m.MainClass))
	} else {
		stmts = append(stmts, rules.Library(m.Name, m.Deps, m.Visibility, m.Srcs))
	}
	return starlark.RenderFile(stmts)
}
