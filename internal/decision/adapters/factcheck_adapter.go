package adapters

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"veracity/internal/decision/ports"
	"veracity/internal/evidence/factcheck"
	"veracity/pkg/platform/sentinel"
)

// FactCheckClient is the upstream the adapter wraps.
type FactCheckClient interface {
	Configured() bool
	Search(ctx context.Context, query string) (factcheck.Result, bool, error)
}

// FactCheckAdapter implements ports.FactCheckPort over the fact-check client,
// adding a timeout, an optional cache and a circuit breaker. It never fails:
// every problem becomes a LookupFailed outcome.
type FactCheckAdapter struct {
	base
	client  FactCheckClient
	cache   factcheck.Cache
	timeout time.Duration
}

// NewFactCheckAdapter creates the adapter. cache may be nil.
func NewFactCheckAdapter(client FactCheckClient, cache factcheck.Cache, timeout time.Duration, opts ...Option) *FactCheckAdapter {
	return &FactCheckAdapter{
		base:    newBase(adapterFactCheck, opts),
		client:  client,
		cache:   cache,
		timeout: timeout,
	}
}

// Lookup implements ports.FactCheckPort.
func (a *FactCheckAdapter) Lookup(ctx context.Context, text string) ports.FactCheckLookup {
	if a.client == nil || !a.client.Configured() {
		a.metrics.IncrementAdapterOutcome(a.name, statusSkipped)
		return ports.FactCheckLookup{Status: ports.LookupSkipped}
	}

	if entry, ok := a.cached(ctx, text); ok {
		a.metrics.IncrementAdapterOutcome(a.name, statusCacheHit)
		return toLookup(entry)
	}

	if !a.allow() {
		return ports.FactCheckLookup{Status: ports.LookupFailed, Err: circuitOpenError(factcheck.ProviderID)}
	}

	callCtx := ctx
	if a.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	result, found, err := a.client.Search(callCtx, text)
	if err != nil {
		a.recordFailure(ctx, err)
		return ports.FactCheckLookup{Status: ports.LookupFailed, Err: err}
	}

	entry := factcheck.Entry{Found: found, Result: result}
	if found {
		a.recordSuccess(statusFound)
	} else {
		a.recordSuccess(statusNoClaims)
	}
	a.store(ctx, text, entry)
	return toLookup(entry)
}

// cached treats every cache error as a miss.
func (a *FactCheckAdapter) cached(ctx context.Context, text string) (factcheck.Entry, bool) {
	if a.cache == nil {
		return factcheck.Entry{}, false
	}
	entry, err := a.cache.Get(ctx, text)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			a.log(ctx, slog.LevelWarn, "fact-check cache read failed", "error", err)
		}
		return factcheck.Entry{}, false
	}
	return entry, true
}

func (a *FactCheckAdapter) store(ctx context.Context, text string, entry factcheck.Entry) {
	if a.cache == nil {
		return
	}
	if err := a.cache.Set(ctx, text, entry); err != nil {
		a.log(ctx, slog.LevelWarn, "fact-check cache write failed", "error", err)
	}
}

func toLookup(entry factcheck.Entry) ports.FactCheckLookup {
	if !entry.Found {
		return ports.FactCheckLookup{Status: ports.LookupNoClaims}
	}
	return ports.FactCheckLookup{
		Status: ports.LookupFound,
		Result: &ports.FactCheckResult{
			Rating:    entry.Result.Rating,
			Publisher: entry.Result.Publisher,
			ReviewURL: entry.Result.ReviewURL,
		},
	}
}
