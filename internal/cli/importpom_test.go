package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/buildgraph/bzlgen/pkg/project"
)

const testPOM = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <groupId>com.example</groupId>
  <artifactId>demo</artifactId>
  <dependencies>
    <dependency>
      <groupId>com.google.guava</groupId>
      <artifactId>guava</artifactId>
      <version>19.0</version>
    </dependency>
    <dependency>
      <groupId>com.typesafe</groupId>
      <artifactId>config</artifactId>
      <version>1.3.0</version>
    </dependency>
  </dependencies>
</project>
`

func TestImportPOM(t *testing.T) {
	dir := t.TempDir()
	manifest := writeManifest(t, dir)
	pom := filepath.Join(dir, "pom.xml")
	if err := os.WriteFile(pom, []byte(testPOM), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "import-pom", "--manifest", manifest, pom); err != nil {
		t.Fatalf("import-pom failed: %v", err)
	}

	p, err := project.Load(manifest)
	if err != nil {
		t.Fatal(err)
	}

	names := make([]string, len(p.Artifacts))
	for i, a := range p.Artifacts {
		names[i] = a.Name
	}
	joined := strings.Join(names, ",")

	// The pre-existing guava artifact keeps its manifest entry; config is new.
	if !strings.Contains(joined, "guava") {
		t.Errorf("manifest lost existing artifact: %v", names)
	}
	if !strings.Contains(joined, "com_typesafe_config") {
		t.Errorf("manifest missing imported artifact: %v", names)
	}
	if len(p.Artifacts) != 3 {
		// guava (manifest), com_google_guava_guava (pom), com_typesafe_config (pom)
		t.Errorf("artifact count = %d, want 3: %v", len(p.Artifacts), names)
	}
}

func TestImportPOMMissingFile(t *testing.T) {
	dir := t.TempDir()
	manifest := writeManifest(t, dir)

	if _, err := runCommand(t, "import-pom", "--manifest", manifest, filepath.Join(dir, "absent.xml")); err == nil {
		t.Fatal("import-pom should fail for a missing pom.xml")
	}
}
