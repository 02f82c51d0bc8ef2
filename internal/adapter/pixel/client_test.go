package pixel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"storefront-checkout-gateway/config"
	"storefront-checkout-gateway/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, serverURL, pixelID string) *Client {
	t.Helper()
	c := NewClient(config.PixelConfig{
		Endpoint:    serverURL,
		PixelID:     pixelID,
		AccessToken: "test-token",
		Timeout:     2 * time.Second,
	}, nil, zerolog.Nop())
	c.intervals = []time.Duration{time.Millisecond, time.Millisecond}
	return c
}

func waitDelivered(t *testing.T, delivered <-chan struct{}) {
	t.Helper()
	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("pixel delivery timed out")
	}
}

func TestClient_Call_Delivers(t *testing.T) {
	var got eventPayload
	var gotAuth, gotPath string
	delivered := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		delivered <- struct{}{}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "px-123")
	err := c.Call(context.Background(), domain.PixelActionTrack, domain.PixelInitiateCheckout, map[string]interface{}{
		"value":    199.0,
		"currency": "ILS",
	})
	require.NoError(t, err)
	waitDelivered(t, delivered)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "/px-123/events", gotPath)
	assert.Equal(t, "px-123", got.PixelID)
	assert.Equal(t, "track", got.Action)
	assert.Equal(t, "InitiateCheckout", got.EventName)
	assert.Equal(t, 199.0, got.Data["value"])
	assert.NotZero(t, got.Timestamp)
}

func TestClient_Call_NoPixelConfigured(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "")
	err := c.Call(context.Background(), domain.PixelActionTrack, domain.PixelAddToCart, nil)
	assert.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestClient_Call_MalformedCallSkipped(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "px-123")

	assert.NoError(t, c.Call(context.Background(), "", domain.PixelAddToCart, nil))
	assert.NoError(t, c.Call(context.Background(), domain.PixelActionTrack, "", nil))

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestClient_Call_RetriesTransientFailure(t *testing.T) {
	var calls int32
	delivered := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		delivered <- struct{}{}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "px-123")
	err := c.Call(context.Background(), domain.PixelActionTrack, domain.PixelViewContent, nil)
	assert.NoError(t, err)
	waitDelivered(t, delivered)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_Call_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	rejected := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		rejected <- struct{}{}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "px-123")
	err := c.Call(context.Background(), domain.PixelActionTrack, domain.PixelPageView, nil)
	assert.NoError(t, err)
	waitDelivered(t, rejected)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_Call_ExhaustsRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "px-123")
	err := c.Call(context.Background(), domain.PixelActionTrack, domain.PixelAddToCart, nil)
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 3
	}, 2*time.Second, 5*time.Millisecond)
}

func TestClient_Call_DoesNotBlockOnFailingEndpoint(t *testing.T) {
	// Unreachable endpoint and production retry intervals: Call must still
	// return immediately, leaving the retry loop to the background.
	c := NewClient(config.PixelConfig{
		Endpoint:    "http://127.0.0.1:1",
		PixelID:     "px-123",
		AccessToken: "test-token",
		Timeout:     2 * time.Second,
	}, nil, zerolog.Nop())

	start := time.Now()
	err := c.Call(context.Background(), domain.PixelActionTrack, domain.PixelInitiateCheckout, nil)
	elapsed := time.Since(start)

	assert.NoError(t, err)
	assert.Less(t, elapsed, 100*time.Millisecond)
}
