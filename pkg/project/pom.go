package project

import (
	"encoding/xml"
	"os"
	"strings"

	"github.com/buildgraph/bzlgen/pkg/errors"
)

// FromPOM reads a Maven pom.xml and returns its compile-scope
// dependencies as workspace artifacts. Test, provided, and optional
// dependencies are skipped, as are dependencies with unresolved Maven
// properties (${...}). Versions declared in the POM are carried into the
// coordinate; unversioned dependencies come back unpinned.
func FromPOM(path string) ([]Artifact, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s not found", path)
	}
	if err != nil {
		return nil, err
	}

	var pom pomProject
	if err := xml.Unmarshal(data, &pom); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", path)
	}

	var artifacts []Artifact
	seen := make(map[string]bool)

	for _, dep := range pom.Dependencies {
		if dep.Scope == "test" || dep.Scope == "provided" || dep.Optional == "true" {
			continue
		}
		// Skip dependencies with unresolved Maven properties
		if strings.HasPrefix(dep.GroupID, "${") || strings.HasPrefix(dep.ArtifactID, "${") ||
			strings.HasPrefix(dep.Version, "${") {
			continue
		}
		coord := dep.GroupID + ":" + dep.ArtifactID
		if seen[coord] {
			continue
		}
		seen[coord] = true

		if dep.Version != "" {
			coord += ":" + dep.Version
		}
		artifacts = append(artifacts, Artifact{
			Name:       WorkspaceName(dep.GroupID, dep.ArtifactID),
			Coordinate: coord,
		})
	}
	return artifacts, nil
}

// WorkspaceName derives a Bazel workspace name from Maven coordinates by
// joining group and artifact with underscores and replacing every
// character that is not valid in a workspace name.
func WorkspaceName(groupID, artifactID string) string {
	return sanitize(groupID) + "_" + sanitize(artifactID)
}

func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

type pomProject struct {
	GroupID      string          `xml:"groupId"`
	ArtifactID   string          `xml:"artifactId"`
	Version      string          `xml:"version"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Scope      string `xml:"scope"`
	Optional   string `xml:"optional"`
}
