package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/buildgraph/bzlgen/pkg/project"
)

const testManifest = `rules-version = "0.1.0"

[[module]]
name = "core"
srcs = ["Core.scala"]

[[module]]
name = "app"
deps = ["//core:core", "//external:guava"]
srcs = ["Main.scala"]
main-class = "com.example.Main"

[[artifact]]
name = "guava"
coordinate = "com.google.guava:guava:19.0"
`

func writeManifest(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte(testManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := testCLI().RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGenerateWritesFiles(t *testing.T) {
	dir := t.TempDir()
	manifest := writeManifest(t, dir)

	_, err := runCommand(t, "generate", "--manifest", manifest, "--out", dir)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	ws, err := os.ReadFile(filepath.Join(dir, "WORKSPACE"))
	if err != nil {
		t.Fatalf("WORKSPACE not written: %v", err)
	}
	if !strings.Contains(string(ws), "rules_scala_version = '0.1.0'") {
		t.Errorf("WORKSPACE missing version binding:\n%s", ws)
	}

	build, err := os.ReadFile(filepath.Join(dir, "app", "BUILD"))
	if err != nil {
		t.Fatalf("app BUILD not written: %v", err)
	}
	if !strings.Contains(string(build), "scala_binary(") {
		t.Errorf("app BUILD missing binary rule:\n%s", build)
	}
}

func TestGenerateDryRun(t *testing.T) {
	dir := t.TempDir()
	manifest := writeManifest(t, dir)

	out, err := runCommand(t, "generate", "--manifest", manifest, "--out", dir, "--dry-run")
	if err != nil {
		t.Fatalf("generate --dry-run failed: %v", err)
	}

	for _, header := range []string{"# WORKSPACE", "# " + filepath.Join("core", "BUILD"), "# " + filepath.Join("app", "BUILD")} {
		if !strings.Contains(out, header) {
			t.Errorf("dry run output missing %q header:\n%s", header, out)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "WORKSPACE")); !os.IsNotExist(err) {
		t.Error("dry run should not write files")
	}
}

func TestGenerateCheck(t *testing.T) {
	dir := t.TempDir()
	manifest := writeManifest(t, dir)

	// Fresh tree: everything is stale.
	_, err := runCommand(t, "generate", "--manifest", manifest, "--out", dir, "--check")
	if err == nil {
		t.Fatal("check should fail before files are generated")
	}

	if _, err := runCommand(t, "generate", "--manifest", manifest, "--out", dir); err != nil {
		t.Fatal(err)
	}

	// Generated tree: check passes.
	if _, err := runCommand(t, "generate", "--manifest", manifest, "--out", dir, "--check"); err != nil {
		t.Fatalf("check failed on fresh output: %v", err)
	}

	// Corrupt one file: check fails again.
	if err := os.WriteFile(filepath.Join(dir, "WORKSPACE"), []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := runCommand(t, "generate", "--manifest", manifest, "--out", dir, "--check"); err == nil {
		t.Fatal("check should fail after output is modified")
	}
}

func TestGenerateMissingManifest(t *testing.T) {
	dir := t.TempDir()
	_, err := runCommand(t, "generate", "--manifest", filepath.Join(dir, "absent.toml"), "--out", dir)
	if err == nil {
		t.Fatal("generate should fail without a manifest")
	}
}

func TestGenerateRegenerationIsStable(t *testing.T) {
	dir := t.TempDir()
	manifest := writeManifest(t, dir)

	if _, err := runCommand(t, "generate", "--manifest", manifest, "--out", dir); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(filepath.Join(dir, "WORKSPACE"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "generate", "--manifest", manifest, "--out", dir); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(filepath.Join(dir, "WORKSPACE"))
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("regenerating an unchanged manifest should produce identical output")
	}
}
