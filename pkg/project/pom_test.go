package project

import (
	"os"
	"path/filepath"
	"testing"

	bzlerrors "github.com/buildgraph/bzlgen/pkg/errors"
)

const samplePOM = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <groupId>com.example</groupId>
  <artifactId>demo</artifactId>
  <version>1.0.0</version>
  <dependencies>
    <dependency>
      <groupId>com.google.guava</groupId>
      <artifactId>guava</artifactId>
      <version>19.0</version>
    </dependency>
    <dependency>
      <groupId>org.scalatest</groupId>
      <artifactId>scalatest_2.11</artifactId>
      <version>3.0.0</version>
      <scope>test</scope>
    </dependency>
    <dependency>
      <groupId>javax.servlet</groupId>
      <artifactId>servlet-api</artifactId>
      <version>3.1</version>
      <scope>provided</scope>
    </dependency>
    <dependency>
      <groupId>org.slf4j</groupId>
      <artifactId>slf4j-api</artifactId>
      <version>1.7.25</version>
      <optional>true</optional>
    </dependency>
    <dependency>
      <groupId>com.typesafe</groupId>
      <artifactId>config</artifactId>
      <version>${config.version}</version>
    </dependency>
    <dependency>
      <groupId>joda-time</groupId>
      <artifactId>joda-time</artifactId>
    </dependency>
  </dependencies>
</project>
`

func writePOM(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pom.xml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFromPOM(t *testing.T) {
	artifacts, err := FromPOM(writePOM(t, samplePOM))
	if err != nil {
		t.Fatalf("FromPOM() error: %v", err)
	}

	want := []Artifact{
		{Name: "com_google_guava_guava", Coordinate: "com.google.guava:guava:19.0"},
		{Name: "joda_time_joda_time", Coordinate: "joda-time:joda-time"},
	}
	if len(artifacts) != len(want) {
		t.Fatalf("got %d artifacts %v, want %d", len(artifacts), artifacts, len(want))
	}
	for i, w := range want {
		if artifacts[i] != w {
			t.Errorf("artifact %d = %v, want %v", i, artifacts[i], w)
		}
	}
	if artifacts[1].Pinned() {
		t.Error("unversioned dependency should come back unpinned")
	}
}

func TestFromPOMMissingFile(t *testing.T) {
	_, err := FromPOM(filepath.Join(t.TempDir(), "pom.xml"))
	if err == nil {
		t.Fatal("FromPOM() = nil error for missing file")
	}
	if got := bzlerrors.GetCode(err); got != bzlerrors.ErrCodeFileNotFound {
		t.Errorf("error code = %q, want %q", got, bzlerrors.ErrCodeFileNotFound)
	}
}

func TestFromPOMMalformed(t *testing.T) {
	_, err := FromPOM(writePOM(t, "<project><dependencies>"))
	if err == nil {
		t.Fatal("FromPOM() = nil error for malformed XML")
	}
	if got := bzlerrors.GetCode(err); got != bzlerrors.ErrCodeInvalidFormat {
		t.Errorf("error code = %q, want %q", got, bzlerrors.ErrCodeInvalidFormat)
	}
}

func TestWorkspaceName(t *testing.T) {
	tests := []struct {
		group, artifact, want string
	}{
		{"com.google.guava", "guava", "com_google_guava_guava"},
		{"joda-time", "joda-time", "joda_time_joda_time"},
		{"org.scalatest", "scalatest_2.11", "org_scalatest_scalatest_2_11"},
		{"UpperCase", "Mixed", "uppercase_mixed"},
	}
	for _, tt := range tests {
		if got := WorkspaceName(tt.group, tt.artifact); got != tt.want {
			t.Errorf("WorkspaceName(%q, %q) = %q, want %q", tt.group, tt.artifact, got, tt.want)
		}
	}
}
