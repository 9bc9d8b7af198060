package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veracity/internal/evidence/providers"
)

func newHuggingFace(t *testing.T, handler http.HandlerFunc) *HuggingFace {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHuggingFace(Config{
		URL:                srv.URL,
		Token:              "hf_token",
		Timeout:            2 * time.Second,
		HypothesisTemplate: "This example is {}.",
		Retry:              providers.RetryPolicy{MaxAttempts: 2, InitialInterval: time.Millisecond},
	})
}

func TestHuggingFace_FakeProbability(t *testing.T) {
	t.Run("sends zero-shot request and rebinds fake label", func(t *testing.T) {
		hf := newHuggingFace(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer hf_token", r.Header.Get("Authorization"))

			var req zeroShotRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Aliens endorse candidate", req.Inputs)
			assert.Equal(t, []string{"fake", "real"}, req.Parameters.CandidateLabels)
			assert.Equal(t, "This example is {}.", req.Parameters.HypothesisTemplate)

			_, _ = w.Write([]byte(`{"labels":["real","fake"],"scores":[0.08,0.92]}`))
		})

		score, err := hf.FakeProbability(context.Background(), "Aliens endorse candidate")
		require.NoError(t, err)
		assert.InDelta(t, 0.92, score, 1e-9)
		assert.Equal(t, HuggingFaceID, hf.ID())
	})

	t.Run("model loading is retried", func(t *testing.T) {
		var calls atomic.Int32
		hf := newHuggingFace(t, func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"error":"Model is currently loading"}`))
				return
			}
			_, _ = w.Write([]byte(`[{"label":"fake","score":0.3},{"label":"real","score":0.7}]`))
		})

		score, err := hf.FakeProbability(context.Background(), "text")
		require.NoError(t, err)
		assert.InDelta(t, 0.3, score, 1e-9)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("missing fake label is bad data", func(t *testing.T) {
		hf := newHuggingFace(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"labels":["satire"],"scores":[1]}`))
		})

		_, err := hf.FakeProbability(context.Background(), "text")
		assert.Equal(t, providers.ErrorBadData, providers.GetCategory(err))
	})

	t.Run("unauthorized", func(t *testing.T) {
		hf := newHuggingFace(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := hf.FakeProbability(context.Background(), "text")
		assert.Equal(t, providers.ErrorAuthentication, providers.GetCategory(err))
	})
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "huggingface"})
	require.NoError(t, err)
	assert.Equal(t, HuggingFaceID, p.ID())

	p, err = NewProvider(context.Background(), Config{Provider: "none"})
	require.NoError(t, err)
	_, err = p.FakeProbability(context.Background(), "text")
	assert.Error(t, err)

	_, err = NewProvider(context.Background(), Config{Provider: "bert"})
	assert.ErrorContains(t, err, "unknown classifier provider")
}
