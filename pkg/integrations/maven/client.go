// Package maven resolves artifact coordinates against the Maven Central
// repository. The pin command uses it to turn "group:artifact" manifest
// coordinates into pinned "group:artifact:version" ones.
package maven

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/buildgraph/bzlgen/pkg/integrations"
)

// ArtifactInfo holds the registry metadata for one Maven artifact.
type ArtifactInfo struct {
	GroupID    string // Maven groupId (e.g., "com.google.guava")
	ArtifactID string // Maven artifactId (e.g., "guava")
	Version    string // Latest released version
}

// Coordinate returns the full pinned coordinate
// "groupId:artifactId:version".
func (a *ArtifactInfo) Coordinate() string {
	return a.GroupID + ":" + a.ArtifactID + ":" + a.Version
}

// Client queries the Maven Central search API with caching and retries.
// Safe for concurrent use.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Maven Central client caching responses for
// cacheTTL. A TTL of 0 disables expiry; pass a short TTL when fresh
// versions matter.
func NewClient(cacheTTL time.Duration) (*Client, error) {
	cache, err := integrations.NewCache(cacheTTL)
	if err != nil {
		return nil, err
	}
	return &Client{
		Client:  integrations.NewClient(cache),
		baseURL: "https://search.maven.org/solrsearch/select",
	}, nil
}

// FetchArtifact resolves a "groupId:artifactId" coordinate to its latest
// released version. A pinned coordinate is accepted; any version suffix
// is ignored and the latest version is looked up fresh.
//
// If refresh is true the cache is bypassed. Returns
// [integrations.ErrNotFound] when the artifact does not exist and
// [integrations.ErrNetwork] for HTTP failures.
func (c *Client) FetchArtifact(ctx context.Context, coordinate string, refresh bool) (*ArtifactInfo, error) {
	groupID, artifactID, err := parseCoordinate(coordinate)
	if err != nil {
		return nil, err
	}

	var info ArtifactInfo
	key := "maven:" + groupID + ":" + artifactID
	err = c.Cached(ctx, key, refresh, &info, func() error {
		return c.fetch(ctx, groupID, artifactID, &info)
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) fetch(ctx context.Context, groupID, artifactID string, info *ArtifactInfo) error {
	query := fmt.Sprintf("g:%q AND a:%q", groupID, artifactID)
	url := fmt.Sprintf("%s?q=%s&rows=1&wt=json", c.baseURL, integrations.URLEncode(query))

	var resp searchResponse
	if err := c.Get(ctx, url, &resp); err != nil {
		return err
	}
	if resp.Response.NumFound == 0 {
		return fmt.Errorf("%w: maven artifact %s:%s", integrations.ErrNotFound, groupID, artifactID)
	}

	doc := resp.Response.Docs[0]
	version := doc.LatestVersion
	if version == "" {
		version = doc.Version
	}

	*info = ArtifactInfo{
		GroupID:    groupID,
		ArtifactID: artifactID,
		Version:    version,
	}
	return nil
}

func parseCoordinate(coord string) (groupID, artifactID string, err error) {
	parts := strings.Split(coord, ":")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("invalid maven coordinate %q (expected groupId:artifactId)", coord)
	}
	return parts[0], parts[1], nil
}

type searchResponse struct {
	Response struct {
		NumFound int         `json:"numFound"`
		Docs     []searchDoc `json:"docs"`
	} `json:"response"`
}

type searchDoc struct {
	GroupID       string `json:"g"`
	ArtifactID    string `json:"a"`
	Version       string `json:"v"`
	LatestVersion string `json:"latestVersion"`
}
