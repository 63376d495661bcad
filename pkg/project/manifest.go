package project

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/buildgraph/bzlgen/pkg/errors"
)

// ManifestName is the default manifest filename looked up by the CLI.
const ManifestName = "bzlgen.toml"

// manifest is the on-disk TOML shape of a project.
type manifest struct {
	RulesVersion string             `toml:"rules-version"`
	Repository   string             `toml:"repository,omitempty"`
	Modules      []manifestModule   `toml:"module"`
	Artifacts    []manifestArtifact `toml:"artifact"`
}

type manifestModule struct {
	Name       string   `toml:"name"`
	Deps       []string `toml:"deps,omitempty"`
	Srcs       []string `toml:"srcs,omitempty"`
	Visibility string   `toml:"visibility,omitempty"`
	MainClass  string   `toml:"main-class,omitempty"`
}

type manifestArtifact struct {
	Name       string `toml:"name"`
	Coordinate string `toml:"coordinate"`
}

// Load reads and validates a project manifest. Missing repository and
// module visibility fields receive the package defaults; everything else
// must be supplied by the manifest.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s not found", path)
	}
	if err != nil {
		return nil, err
	}

	var mf manifest
	if err := toml.Unmarshal(data, &mf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", path)
	}

	p := fromManifest(&mf)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Save writes the project back to path as TOML. Comments in the original
// manifest are not preserved; the pin command warns about this before
// rewriting.
func Save(p *Project, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(toManifest(p)); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func fromManifest(mf *manifest) *Project {
	p := &Project{
		RulesVersion: mf.RulesVersion,
		Repository:   mf.Repository,
	}
	if p.Repository == "" {
		p.Repository = DefaultRepository
	}

	for _, m := range mf.Modules {
		mod := Module{
			Name:       m.Name,
			Deps:       m.Deps,
			Srcs:       m.Srcs,
			Visibility: m.Visibility,
			MainClass:  m.MainClass,
		}
		if mod.Visibility == "" && !mod.IsBinary() {
			mod.Visibility = DefaultVisibility
		}
		p.Modules = append(p.Modules, mod)
	}
	for _, a := range mf.Artifacts {
		p.Artifacts = append(p.Artifacts, Artifact{Name: a.Name, Coordinate: a.Coordinate})
	}
	return p
}

func toManifest(p *Project) *manifest {
	mf := &manifest{
		RulesVersion: p.RulesVersion,
		Repository:   p.Repository,
	}
	if mf.Repository == DefaultRepository {
		mf.Repository = ""
	}

	for _, m := range p.Modules {
		mm := manifestModule{
			Name:       m.Name,
			Deps:       m.Deps,
			Srcs:       m.Srcs,
			Visibility: m.Visibility,
			MainClass:  m.MainClass,
		}
		if mm.Visibility == DefaultVisibility {
			mm.Visibility = ""
		}
		mf.Modules = append(mf.Modules, mm)
	}
	for _, a := range p.Artifacts {
		mf.Artifacts = append(mf.Artifacts, manifestArtifact{Name: a.Name, Coordinate: a.Coordinate})
	}
	return mf
}
