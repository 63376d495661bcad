// Package integrations provides the shared plumbing for registry API
// clients.
//
// # Overview
//
// [Client] wraps an HTTP client with the behavior every registry client
// needs: response caching through [httputil.Cache], retry with backoff
// for transient failures, and a mapping from HTTP status codes to the
// [ErrNotFound] and [ErrNetwork] sentinels.
//
// The concrete clients live in subpackages; currently
// [github.com/buildgraph/bzlgen/pkg/integrations/maven] resolves
// coordinates against Maven Central for the pin command.
//
// # Error Handling
//
// Check sentinels with errors.Is:
//
//	info, err := client.FetchArtifact(ctx, "com.google.guava:guava", false)
//	if errors.Is(err, integrations.ErrNotFound) {
//	    // artifact does not exist
//	}
//
// Network errors are wrapped in [httputil.RetryableError] internally, so
// transient failures retry before surfacing.
package integrations
