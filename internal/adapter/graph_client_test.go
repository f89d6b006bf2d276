package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mail-sync/internal/config"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
)

func testSyncConfig() config.Sync {
	return config.Sync{
		PageSize:          50,
		MaxRetries:        5,
		RetryAfterDefault: 10 * time.Millisecond,
		FetchTimeout:      time.Second,
	}
}

func TestGraphClient_FetchPage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		assert.Equal(t, "50", r.URL.Query().Get("$top"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"value": [{"id": "msg-1"}, {"id": "msg-2"}],
			"@odata.nextLink": "https://graph.example.com/next"
		}`))
	}))
	defer srv.Close()

	client := NewGraphClient(testSyncConfig(), logger.Nop())

	page, err := client.FetchPage(context.Background(), srv.URL, "access-token")
	require.NoError(t, err)

	assert.Len(t, page.Items, 2)
	assert.Equal(t, "https://graph.example.com/next", page.NextLink)
	assert.Empty(t, page.DeltaLink)
}

func TestGraphClient_FetchPage_DeltaLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value": [], "@odata.deltaLink": "https://graph.example.com/delta"}`))
	}))
	defer srv.Close()

	client := NewGraphClient(testSyncConfig(), logger.Nop())

	page, err := client.FetchPage(context.Background(), srv.URL, "access-token")
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Empty(t, page.NextLink)
	assert.Equal(t, "https://graph.example.com/delta", page.DeltaLink)
}

func TestGraphClient_FetchPage_RetriesAfterRateLimit(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) <= 3 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value": [{"id": "msg-1"}]}`))
	}))
	defer srv.Close()

	client := NewGraphClient(testSyncConfig(), logger.Nop())

	page, err := client.FetchPage(context.Background(), srv.URL, "access-token")
	require.NoError(t, err)

	assert.Equal(t, int32(4), calls.Load())
	assert.Len(t, page.Items, 1)
}

func TestGraphClient_FetchPage_RetryBudgetExhausted(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewGraphClient(testSyncConfig(), logger.Nop())

	_, err := client.FetchPage(context.Background(), srv.URL, "access-token")
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrMaxRetriesReached)
	assert.Equal(t, int32(5), calls.Load())
}

func TestGraphClient_FetchPage_ServerErrorConsumesBudget(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewGraphClient(testSyncConfig(), logger.Nop())

	_, err := client.FetchPage(context.Background(), srv.URL, "access-token")
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrMaxRetriesReached)
	assert.Equal(t, int32(5), calls.Load())
}

func TestGraphClient_FetchPage_MissingRetryAfterUsesDefault(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value": []}`))
	}))
	defer srv.Close()

	cfg := testSyncConfig()
	cfg.RetryAfterDefault = 30 * time.Millisecond
	client := NewGraphClient(cfg, logger.Nop())

	start := time.Now()
	_, err := client.FetchPage(context.Background(), srv.URL, "access-token")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGraphClient_FetchPage_ContextCancelledDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "2")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewGraphClient(testSyncConfig(), logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.FetchPage(ctx, srv.URL, "access-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrMaxRetriesReached))
}

func TestGraphClient_FetchPage_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value": not json`))
	}))
	defer srv.Close()

	client := NewGraphClient(testSyncConfig(), logger.Nop())

	_, err := client.FetchPage(context.Background(), srv.URL, "access-token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode page response")
}
