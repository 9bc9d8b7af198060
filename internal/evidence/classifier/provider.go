package classifier

import (
	"context"
	"fmt"
	"time"

	"veracity/internal/evidence/providers"
)

// Candidate labels offered to every backend. Only the "fake" score is read.
const (
	LabelFake = "fake"
	LabelReal = "real"
)

// Provider turns text into the probability that it is fake news.
// Implementations return a categorized providers.ProviderError on failure
// and leave fallback handling to the caller.
type Provider interface {
	ID() string
	FakeProbability(ctx context.Context, text string) (float64, error)
}

// Config selects and configures a Provider.
type Config struct {
	Provider           string
	URL                string
	Token              string
	Timeout            time.Duration
	HypothesisTemplate string
	Retry              providers.RetryPolicy

	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
}

// NewProvider builds the backend named by cfg.Provider.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "", "huggingface":
		return NewHuggingFace(cfg), nil
	case "llm":
		return NewLLM(ctx, cfg)
	case "none":
		return Unavailable{}, nil
	default:
		return nil, fmt.Errorf("unknown classifier provider %q", cfg.Provider)
	}
}
