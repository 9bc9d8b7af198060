package classifier

import (
	"context"

	"veracity/internal/evidence/providers"
	"veracity/pkg/platform/sentinel"
)

// UnavailableID names the placeholder backend.
const UnavailableID = "none"

// Unavailable is the backend used when no model is configured. Every call
// fails so the caller falls back to the neutral score.
type Unavailable struct{}

func (Unavailable) ID() string { return UnavailableID }

func (Unavailable) FakeProbability(context.Context, string) (float64, error) {
	return 0, providers.NewProviderError(providers.ErrorInternal, UnavailableID, "no classifier configured", sentinel.ErrNotConfigured)
}
