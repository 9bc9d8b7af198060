package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStatus(t *testing.T) {
	tests := []struct {
		status    int
		category  ErrorCategory
		retryable bool
	}{
		{http.StatusUnauthorized, ErrorAuthentication, false},
		{http.StatusForbidden, ErrorAuthentication, false},
		{http.StatusTooManyRequests, ErrorRateLimited, true},
		{http.StatusGatewayTimeout, ErrorTimeout, true},
		{http.StatusServiceUnavailable, ErrorProviderOutage, true},
		{http.StatusBadRequest, ErrorContractMismatch, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			err := FromStatus("factcheck", tt.status)
			assert.Equal(t, tt.category, err.Category)
			assert.Equal(t, tt.retryable, IsRetryable(err))
		})
	}
}

func TestFromTransport(t *testing.T) {
	assert.Equal(t, ErrorTimeout, FromTransport("x", context.DeadlineExceeded).Category)
	assert.False(t, IsRetryable(FromTransport("x", context.Canceled)))
	assert.Equal(t, ErrorProviderOutage, FromTransport("x", errors.New("connection refused")).Category)
}

func TestGetCategory(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", NewProviderError(ErrorBadData, "classifier", "no fake label", nil))
	assert.Equal(t, ErrorBadData, GetCategory(wrapped))
	assert.Equal(t, ErrorTimeout, GetCategory(context.DeadlineExceeded))
	assert.Equal(t, ErrorInternal, GetCategory(errors.New("boom")))
	assert.Contains(t, wrapped.Error(), "provider classifier [bad_data]: no fake label")
}

func TestRetryPolicy_Do(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 3, InitialInterval: time.Millisecond}

	t.Run("retries transient failures until success", func(t *testing.T) {
		calls := 0
		err := policy.Do(context.Background(), func(context.Context) error {
			calls++
			if calls < 3 {
				return NewProviderError(ErrorProviderOutage, "x", "503", nil)
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops after max attempts", func(t *testing.T) {
		calls := 0
		err := policy.Do(context.Background(), func(context.Context) error {
			calls++
			return NewProviderError(ErrorTimeout, "x", "slow", nil)
		})
		assert.Equal(t, ErrorTimeout, GetCategory(err))
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry permanent failures", func(t *testing.T) {
		calls := 0
		err := policy.Do(context.Background(), func(context.Context) error {
			calls++
			return NewProviderError(ErrorAuthentication, "x", "401", nil)
		})
		assert.Equal(t, ErrorAuthentication, GetCategory(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("zero attempts still runs once", func(t *testing.T) {
		calls := 0
		_ = RetryPolicy{}.Do(context.Background(), func(context.Context) error {
			calls++
			return NewProviderError(ErrorTimeout, "x", "slow", nil)
		})
		assert.Equal(t, 1, calls)
	})
}
