package rules

import "github.com/buildgraph/bzlgen/pkg/starlark"

// rules_scala module paths and symbols used by the preamble builders.
const (
	rulesScalaArchive = "@io_bazel_rules_scala"
	scalaBzl          = rulesScalaArchive + "//scala:scala.bzl"
	toolchainsBzl     = rulesScalaArchive + "//scala:toolchains.bzl"

	versionVar       = "rules_scala_version"
	archiveURLFmt    = "https://github.com/bazelbuild/rules_scala/archive/%s.zip"
	archiveStripFmt  = "rules_scala-%s"
	repositoriesSym  = "scala_repositories"
	registerToolsSym = "scala_register_toolchains"
)

// Library builds a scala_library rule. Arguments render in the fixed
// order name, deps, visibility, srcs regardless of how the caller obtained
// the metadata.
func Library(name string, deps []string, visibility string, srcs []string) starlark.Call {
	return starlark.Call{
		Name: "scala_library",
		Args: []starlark.Arg{
			{Key: "name", Value: starlark.Str{Value: name}},
			{Key: "deps", Value: strList(deps)},
			{Key: "visibility", Value: strList([]string{visibility})},
			{Key: "srcs", Value: strList(srcs)},
		},
	}
}

// Binary builds a scala_binary rule with a main class entry point.
func Binary(name string, deps []string, mainClass string) starlark.Call {
	return starlark.Call{
		Name: "scala_binary",
		Args: []starlark.Arg{
			{Key: "name", Value: starlark.Str{Value: name}},
			{Key: "deps", Value: strList(deps)},
			{Key: "main_class", Value: starlark.Str{Value: mainClass}},
		},
	}
}

// Bind builds a bind rule aliasing //external:name to an actual target.
func Bind(name, actual string) starlark.Call {
	return starlark.Call{
		Name: "bind",
		Args: []starlark.Arg{
			{Key: "name", Value: starlark.Str{Value: name}},
			{Key: "actual", Value: starlark.Str{Value: actual}},
		},
	}
}

// MavenJar builds a maven_jar workspace rule fetching an external artifact
// by its "group:artifact:version" coordinate from the given repository.
func MavenJar(name, artifact, repository string) starlark.Call {
	return starlark.Call{
		Name: "maven_jar",
		Args: []starlark.Arg{
			{Key: "name", Value: starlark.Str{Value: name}},
			{Key: "artifact", Value: starlark.Str{Value: artifact}},
			{Key: "repository", Value: starlark.Str{Value: repository}},
		},
	}
}

// WorkspacePreamble builds the fixed statement sequence that sets up
// rules_scala in a WORKSPACE file: the version binding, the http_archive
// fetch (url and strip_prefix formatted against the version variable),
// and the load-plus-call pairs for repository setup and toolchain
// registration.
func WorkspacePreamble(rulesVersion string) []starlark.Expr {
	version := starlark.Var{Name: versionVar}
	return []starlark.Expr{
		starlark.Assign{Name: versionVar, Value: starlark.Str{Value: rulesVersion}},
		starlark.Call{
			Name: "http_archive",
			Args: []starlark.Arg{
				{Key: "name", Value: starlark.Str{Value: "io_bazel_rules_scala"}},
				{Key: "url", Value: starlark.BinOp{
					Op:    "%",
					Left:  starlark.Str{Value: archiveURLFmt},
					Right: version,
				}},
				{Key: "strip_prefix", Value: starlark.BinOp{
					Op:    "%",
					Left:  starlark.Str{Value: archiveStripFmt},
					Right: version,
				}},
			},
		},
		starlark.Load{
			Module:  starlark.Str{Value: scalaBzl},
			Symbols: []starlark.Expr{starlark.Str{Value: repositoriesSym}},
		},
		starlark.Call{Name: repositoriesSym},
		starlark.Load{
			Module:  starlark.Str{Value: toolchainsBzl},
			Symbols: []starlark.Expr{starlark.Str{Value: registerToolsSym}},
		},
		starlark.Call{Name: registerToolsSym},
	}
}

// BuildFilePreamble builds the load statement placed at the top of every
// generated BUILD file, importing the scala rule entry points.
func BuildFilePreamble() starlark.Load {
	return starlark.Load{
		Module: starlark.Str{Value: scalaBzl},
		Symbols: []starlark.Expr{
			starlark.Str{Value: "scala_library"},
			starlark.Str{Value: "scala_binary"},
			starlark.Str{Value: "scala_test"},
		},
	}
}

func strList(values []string) starlark.List {
	l := starlark.List{Items: make([]starlark.Expr, len(values))}
	for i, v := range values {
		l.Items[i] = starlark.Str{Value: v}
	}
	return l
}
