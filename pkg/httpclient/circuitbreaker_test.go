package httpclient

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func breakerTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestBreakerClient(name string) *CircuitBreakerClient {
	cfg := DefaultCircuitBreakerConfig(name)
	cfg.MinRequests = 3
	cfg.Timeout = time.Hour // keep the breaker open for the rest of the test
	return NewCircuitBreakerClient(New(fastConfig()), cfg, breakerTestLogger())
}

func TestCircuitBreakerClient_PassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := newTestBreakerClient("test-pass")
	resp, err := client.Get(context.Background(), srv.URL)

	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCircuitBreakerClient_OpensAfterFailures(t *testing.T) {
	// No server listening: every request is a transport error.
	client := newTestBreakerClient("test-open")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := client.Get(ctx, "http://127.0.0.1:1") //nolint:bodyclose
		require.Error(t, err)
	}

	_, err := client.Get(ctx, "http://127.0.0.1:1") //nolint:bodyclose
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestCircuitBreakerClient_InvalidRequest(t *testing.T) {
	client := newTestBreakerClient("test-bad-url")

	_, err := client.Get(context.Background(), "://not-a-url") //nolint:bodyclose
	assert.Error(t, err)
}
