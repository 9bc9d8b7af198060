// Package sentinel holds errors that describe infrastructure facts rather than
// domain failures. Caches and upstream clients return these, optionally
// wrapped, and callers branch on them with errors.Is.
//
//   - ErrNotFound: the key is not present (cache miss).
//   - ErrUnavailable: a backing service could not be reached.
//   - ErrNotConfigured: the dependency is intentionally absent (no credential, no URL).
package sentinel

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrUnavailable   = errors.New("unavailable")
	ErrNotConfigured = errors.New("not configured")
)
