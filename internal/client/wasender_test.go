package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWasenderSendSuccess(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewWasenderClient(server.URL, "token-123", zap.NewNop())
	require.NoError(t, c.Send(context.Background(), "506111", "hola"))
	require.Equal(t, "Bearer token-123", gotAuth)
}

func TestWasenderSendRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"retry_after": 2}`))
	}))
	defer server.Close()

	c := NewWasenderClient(server.URL, "token-123", zap.NewNop())
	err := c.Send(context.Background(), "506111", "hola")

	var rateErr *RateLimitedError
	require.ErrorAs(t, err, &rateErr)
	require.Equal(t, 2*time.Second, rateErr.RetryAfter)
}

func TestWasenderSendRateLimitedWithoutHint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := NewWasenderClient(server.URL, "token-123", zap.NewNop())
	err := c.Send(context.Background(), "506111", "hola")

	var rateErr *RateLimitedError
	require.ErrorAs(t, err, &rateErr)
	require.Zero(t, rateErr.RetryAfter)
}

func TestWasenderSendServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewWasenderClient(server.URL, "token-123", zap.NewNop())
	err := c.Send(context.Background(), "506111", "hola")
	require.Error(t, err)

	var rateErr *RateLimitedError
	require.False(t, errors.As(err, &rateErr))
}
