// Package httputil provides the HTTP infrastructure shared by registry
// clients: file-based response caching and retry with exponential
// backoff.
//
// # Caching
//
// [Cache] stores responses under ~/.cache/bzlgen/ with a configurable
// TTL, so repeated pin runs do not hammer Maven Central:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	hit, err := cache.Get("maven:com.google.guava:guava", &meta)
//	if !hit {
//	    meta = fetchFromRegistry()
//	    cache.Set("maven:com.google.guava:guava", meta)
//	}
//
// The cache can be cleared with `bzlgen cache clear` or by deleting the
// directory.
//
// # Retry
//
// [Retry] re-runs an operation for transient failures only; clients wrap
// network errors and 5xx responses in [RetryableError] to opt them in.
// Backoff doubles each attempt starting from the initial delay.
package httputil
