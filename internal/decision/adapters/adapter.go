package adapters

import (
	"context"
	"errors"
	"log/slog"

	"veracity/internal/decision/metrics"
	"veracity/internal/evidence/providers"
	"veracity/pkg/platform/circuit"
	"veracity/pkg/requestcontext"
)

// Adapter names used in metrics and logs.
const (
	adapterFactCheck  = "fact_check"
	adapterClassifier = "classifier"
)

// Outcome statuses recorded per adapter call.
const (
	statusOK          = "ok"
	statusFound       = "found"
	statusNoClaims    = "no_claims"
	statusSkipped     = "skipped"
	statusCacheHit    = "cache_hit"
	statusCircuitOpen = "circuit_open"
	statusCanceled    = "canceled"
)

// base carries the cross-cutting collaborators shared by every adapter.
type base struct {
	name    string
	logger  *slog.Logger
	metrics *metrics.Metrics
	breaker *circuit.Breaker
}

// Option configures an adapter.
type Option func(*base)

func WithLogger(logger *slog.Logger) Option {
	return func(b *base) {
		b.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(b *base) {
		b.metrics = m
	}
}

// WithBreaker short-circuits calls while the upstream keeps failing.
func WithBreaker(breaker *circuit.Breaker) Option {
	return func(b *base) {
		b.breaker = breaker
	}
}

func newBase(name string, opts []Option) base {
	b := base{name: name}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// allow reports whether the breaker admits a call. A nil breaker always does.
func (b *base) allow() bool {
	if b.breaker == nil || b.breaker.Allow() {
		return true
	}
	b.metrics.IncrementAdapterOutcome(b.name, statusCircuitOpen)
	return false
}

func (b *base) recordSuccess(status string) {
	b.metrics.IncrementAdapterOutcome(b.name, status)
	if b.breaker == nil {
		return
	}
	if _, change := b.breaker.RecordSuccess(); change.Closed {
		b.metrics.SetCircuitOpen(b.name, false)
		b.log(context.Background(), slog.LevelInfo, "circuit closed")
	}
}

// recordFailure counts an upstream failure against the breaker. Requests
// abandoned by the caller are not the upstream's fault and are not counted.
func (b *base) recordFailure(ctx context.Context, err error) {
	if errors.Is(err, context.Canceled) {
		b.metrics.IncrementAdapterOutcome(b.name, statusCanceled)
		b.release()
		return
	}
	b.metrics.IncrementAdapterOutcome(b.name, string(providers.GetCategory(err)))
	b.log(ctx, slog.LevelWarn, "upstream degraded", "category", providers.GetCategory(err), "error", err)

	if b.breaker == nil {
		return
	}
	if _, change := b.breaker.RecordFailure(); change.Opened {
		b.metrics.SetCircuitOpen(b.name, true)
		b.log(ctx, slog.LevelWarn, "circuit opened")
	}
}

// release hands an admitted call back to the breaker without a verdict.
func (b *base) release() {
	if b.breaker != nil {
		b.breaker.Release()
	}
}

func (b *base) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	if b.logger == nil {
		return
	}
	args = append([]any{"adapter", b.name, "request_id", requestcontext.RequestID(ctx)}, args...)
	b.logger.Log(ctx, level, msg, args...)
}

func circuitOpenError(providerID string) error {
	return providers.NewProviderError(providers.ErrorCircuitOpen, providerID, "circuit open", nil)
}
