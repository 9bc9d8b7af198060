package factcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veracity/internal/evidence/providers"
	"veracity/pkg/platform/sentinel"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, apiKey string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{
		URL:     srv.URL + "/v1alpha1/claims:search",
		APIKey:  apiKey,
		Timeout: 2 * time.Second,
		Retry:   providers.RetryPolicy{MaxAttempts: 2, InitialInterval: time.Millisecond},
	})
}

func TestClient_Search(t *testing.T) {
	t.Run("returns the selected review", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/v1alpha1/claims:search", r.URL.Path)
			assert.Equal(t, "the moon landing was staged", r.URL.Query().Get("query"))
			assert.Equal(t, "secret", r.URL.Query().Get("key"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"claims":[{"text":"moon","claimReview":[{"publisher":{"name":"Snopes","site":"snopes.com"},"url":"https://snopes.com/moon","textualRating":"False"}]}]}`))
		}, "secret")

		result, ok, err := client.Search(context.Background(), "the moon landing was staged")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, Result{Rating: "False", Publisher: "Snopes", ReviewURL: "https://snopes.com/moon"}, result)
	})

	t.Run("no claims", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}, "secret")

		_, ok, err := client.Search(context.Background(), "obscure")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("retries upstream outage", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`{"claims":[{"text":"claim only"}]}`))
		}, "secret")

		result, ok, err := client.Search(context.Background(), "q")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "claim only", result.Rating)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("authentication failure is not retried", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusForbidden)
		}, "bad-key")

		_, _, err := client.Search(context.Background(), "q")
		assert.Equal(t, providers.ErrorAuthentication, providers.GetCategory(err))
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("malformed payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"claims": [`))
		}, "secret")

		_, _, err := client.Search(context.Background(), "q")
		assert.Equal(t, providers.ErrorBadData, providers.GetCategory(err))
	})

	t.Run("no credential never calls upstream", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, func(http.ResponseWriter, *http.Request) { calls.Add(1) }, "")

		assert.False(t, client.Configured())
		_, ok, err := client.Search(context.Background(), "q")
		assert.ErrorIs(t, err, sentinel.ErrNotConfigured)
		assert.False(t, ok)
		assert.Zero(t, calls.Load())
	})

	t.Run("context deadline is a timeout", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}, "secret")

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, _, err := client.Search(ctx, "q")
		assert.Error(t, err)
	})
}

func TestNew_Pacing(t *testing.T) {
	assert.Nil(t, New(Config{}).limiter)

	paced := New(Config{RPS: 0.5})
	require.NotNil(t, paced.limiter)
	assert.Equal(t, 1, paced.limiter.Burst())
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, CacheKey("  claim text "), CacheKey("claim text"))
	assert.NotEqual(t, CacheKey("a"), CacheKey("b"))
	assert.Contains(t, CacheKey("a"), keyPrefix)
}
