// Package random wraps the random number generator behind a Source so
// tests can make generated identifiers deterministic. It lives under
// `internal` because callers should treat random identifier parts as opaque.
package random
