package adapters

import (
	"context"
	"errors"
	"time"

	"veracity/internal/decision/ports"
	"veracity/internal/evidence/classifier"
	"veracity/pkg/platform/sentinel"
	strutil "veracity/pkg/platform/strings"
)

// ClassifierAdapter implements ports.ClassifierPort over a classifier
// provider. Any failure, including a timeout or an open circuit, yields the
// neutral 0.5 marked as degraded.
type ClassifierAdapter struct {
	base
	provider      classifier.Provider
	timeout       time.Duration
	maxInputChars int
}

// NewClassifierAdapter creates the adapter. maxInputChars ≤ 0 disables truncation.
func NewClassifierAdapter(provider classifier.Provider, timeout time.Duration, maxInputChars int, opts ...Option) *ClassifierAdapter {
	return &ClassifierAdapter{
		base:          newBase(adapterClassifier, opts),
		provider:      provider,
		timeout:       timeout,
		maxInputChars: maxInputChars,
	}
}

// Classify implements ports.ClassifierPort.
func (a *ClassifierAdapter) Classify(ctx context.Context, text string) ports.Classification {
	if a.provider == nil {
		a.metrics.IncrementAdapterOutcome(a.name, statusSkipped)
		return ports.Fallback(sentinel.ErrNotConfigured)
	}

	if !a.allow() {
		return ports.Fallback(circuitOpenError(a.provider.ID()))
	}

	callCtx := ctx
	if a.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	score, err := a.provider.FakeProbability(callCtx, strutil.TruncateRunes(text, a.maxInputChars))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotConfigured) {
			a.metrics.IncrementAdapterOutcome(a.name, statusSkipped)
			a.release()
			return ports.Fallback(err)
		}
		a.recordFailure(ctx, err)
		return ports.Fallback(err)
	}

	a.recordSuccess(statusOK)
	return ports.Classification{FakeProbability: score}
}
