package ports

import "context"

// FactCheckPort looks up prior published fact-checks for a piece of text.
// Implementations never return an error; a failed call is reported through
// FactCheckLookup.Status so callers can tell "nothing found" apart from
// "could not ask".
type FactCheckPort interface {
	Lookup(ctx context.Context, text string) FactCheckLookup
}

// LookupStatus describes how a fact-check lookup ended.
type LookupStatus string

const (
	// LookupFound means a claim was found and Result is set.
	LookupFound LookupStatus = "found"
	// LookupNoClaims means the upstream answered with no matching claims.
	LookupNoClaims LookupStatus = "no_claims"
	// LookupSkipped means no credential is configured; the upstream was not called.
	LookupSkipped LookupStatus = "skipped"
	// LookupFailed means the upstream could not be reached or answered badly.
	LookupFailed LookupStatus = "failed"
)

// FactCheckResult is the strong evidence surfaced by a fact-check (port model).
type FactCheckResult struct {
	Rating    string
	Publisher string
	ReviewURL string
}

// FactCheckLookup is the explicit outcome of a lookup. Result is non-nil
// only when Status is LookupFound; Err is set only when Status is LookupFailed.
type FactCheckLookup struct {
	Result *FactCheckResult
	Status LookupStatus
	Err    error
}

// Found reports whether the lookup produced a result.
func (l FactCheckLookup) Found() bool {
	return l.Status == LookupFound && l.Result != nil
}
