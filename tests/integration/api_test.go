package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"storefront-checkout-gateway/config"
	"storefront-checkout-gateway/internal/adapter/commerce"
	httpHandler "storefront-checkout-gateway/internal/adapter/http/handler"
	"storefront-checkout-gateway/internal/adapter/pixel"
	redisStorage "storefront-checkout-gateway/internal/adapter/storage/redis"
	"storefront-checkout-gateway/internal/core/ports"
	"storefront-checkout-gateway/internal/service"
	"storefront-checkout-gateway/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack end-to-end: real HTTP layer,
// middleware, session registry, coordinator, and Redis data layer (miniredis),
// with httptest servers standing in for the storefront API and the pixel
// conversions endpoint.

const dataLayerKey = "analytics:datalayer"

type testApp struct {
	server     *httptest.Server
	storefront *httptest.Server
	pixelSrv   *httptest.Server
	redis      *miniredis.Miniredis
	rdb        *goredis.Client
	pixelCalls *int32
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	// Fake storefront: every cartCreate succeeds with a fixed checkout URL.
	storefront := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"cartCreate": map[string]interface{}{
					"cart": map[string]interface{}{
						"id":          "gid://shopify/Cart/test",
						"checkoutUrl": "https://test-shop.myshopify.com/checkouts/test",
					},
					"userErrors": []interface{}{},
				},
			},
		})
	}))
	t.Cleanup(storefront.Close)

	var pixelCalls int32
	pixelSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&pixelCalls, 1)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(pixelSrv.Close)

	log := logger.New("error", false)

	cartClient := commerce.NewShopifyClient(config.ShopifyConfig{
		StoreDomain:     "test-shop.myshopify.com",
		StorefrontToken: "sf-token",
		APIVersion:      "2024-01",
		APIEndpoint:     storefront.URL,
		Timeout:         2 * time.Second,
	}, storefront.Client(), log)

	pixelSink := pixel.NewClient(config.PixelConfig{
		Endpoint:    pixelSrv.URL,
		PixelID:     "px-test",
		AccessToken: "pixel-token",
		Timeout:     2 * time.Second,
	}, nil, log)

	dataLayer := redisStorage.NewDataLayerQueue(rdb, dataLayerKey, log)
	registry := service.NewSessionRegistry(dataLayer, pixelSink, nil, 30*time.Minute, 0, log)
	t.Cleanup(registry.Close)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CartClient: cartClient,
		Registry:   registry,
		CheckoutCfg: config.CheckoutConfig{
			RedirectDelay: 5 * time.Millisecond,
			SubmitTimeout: 2 * time.Second,
		},
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{
		server:     server,
		storefront: storefront,
		pixelSrv:   pixelSrv,
		redis:      mr,
		rdb:        rdb,
		pixelCalls: &pixelCalls,
	}
}

func (a *testApp) post(t *testing.T, path string, body interface{}, sessionID string) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(http.MethodPost, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (a *testApp) dataLayerEvents(t *testing.T) []map[string]interface{} {
	t.Helper()
	items, err := a.redis.List(dataLayerKey)
	if err != nil {
		return nil
	}
	var events []map[string]interface{}
	for _, item := range items {
		var ev map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(item), &ev))
		events = append(events, ev)
	}
	return events
}

func trackBody() map[string]interface{} {
	return map[string]interface{}{
		"product": map[string]interface{}{
			"id":    "gid://shopify/Product/1",
			"title": "Kit",
		},
		"variant": map[string]interface{}{
			"id":    "gid://shopify/ProductVariant/2",
			"price": map[string]interface{}{"amount": "199.00", "currencyCode": "ILS"},
		},
		"quantity": 1,
	}
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_CheckoutFlow(t *testing.T) {
	app := newTestApp(t)

	body := map[string]interface{}{
		"merchandise_id": "gid://shopify/ProductVariant/2",
		"quantity":       1,
		"product":        trackBody()["product"],
		"variant":        trackBody()["variant"],
	}
	resp := app.post(t, "/api/v1/checkout", body, "visitor-1")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var env struct {
		Data struct {
			CheckoutURL string `json:"checkout_url"`
			State       string `json:"state"`
		} `json:"data"`
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "https://test-shop.myshopify.com/checkouts/test", env.Data.CheckoutURL)
	assert.Equal(t, "REDIRECTED", env.Data.State)
	assert.Equal(t, "visitor-1", env.SessionID)

	// begin_checkout reached the data layer before the URL was released
	events := app.dataLayerEvents(t)
	require.Len(t, events, 1)
	assert.Equal(t, "begin_checkout", events[0]["event"])

	// Pixel delivery is background work; wait for it rather than racing it.
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(app.pixelCalls) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestIntegration_CheckoutNotDelayedByDownPixelEndpoint(t *testing.T) {
	app := newTestApp(t)
	app.pixelSrv.Close()

	body := map[string]interface{}{
		"merchandise_id": "gid://shopify/ProductVariant/2",
		"quantity":       1,
		"product":        trackBody()["product"],
		"variant":        trackBody()["variant"],
	}
	start := time.Now()
	resp := app.post(t, "/api/v1/checkout", body, "visitor-1")
	elapsed := time.Since(start)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var env struct {
		Data struct {
			State string `json:"state"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "REDIRECTED", env.Data.State)
	assert.Less(t, elapsed, time.Second)
}

func TestIntegration_TrackingDedupAcrossRequests(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 3; i++ {
		resp := app.post(t, "/api/v1/track/add-to-cart", trackBody(), "visitor-1")
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
		resp.Body.Close()
	}

	events := app.dataLayerEvents(t)
	require.Len(t, events, 1, "same session and dedup key forwards once")
	assert.Equal(t, "add_to_cart", events[0]["event"])
}

func TestIntegration_TrackingSeparateSessions(t *testing.T) {
	app := newTestApp(t)

	resp := app.post(t, "/api/v1/track/add-to-cart", trackBody(), "visitor-1")
	resp.Body.Close()
	resp = app.post(t, "/api/v1/track/add-to-cart", trackBody(), "visitor-2")
	resp.Body.Close()

	assert.Len(t, app.dataLayerEvents(t), 2)
}

func TestIntegration_ViewThenAddToCartThenCheckout(t *testing.T) {
	app := newTestApp(t)

	viewBody := map[string]interface{}{
		"product": map[string]interface{}{
			"id":    "gid://shopify/Product/1",
			"title": "Kit",
			"variants": []interface{}{map[string]interface{}{
				"id":    "gid://shopify/ProductVariant/2",
				"price": map[string]interface{}{"amount": "199.00", "currencyCode": "ILS"},
			}},
		},
	}
	resp := app.post(t, "/api/v1/track/view", viewBody, "visitor-1")
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp.Body.Close()

	resp = app.post(t, "/api/v1/track/add-to-cart", trackBody(), "visitor-1")
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp.Body.Close()

	checkout := map[string]interface{}{
		"merchandise_id": "gid://shopify/ProductVariant/2",
		"quantity":       1,
		"product":        trackBody()["product"],
		"variant":        trackBody()["variant"],
	}
	resp = app.post(t, "/api/v1/checkout", checkout, "visitor-1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var kinds []string
	for _, ev := range app.dataLayerEvents(t) {
		kinds = append(kinds, ev["event"].(string))
	}
	assert.Equal(t, []string{"view_item", "add_to_cart", "begin_checkout"}, kinds)
}

func TestIntegration_SessionIDGeneratedWhenMissing(t *testing.T) {
	app := newTestApp(t)

	resp := app.post(t, "/api/v1/track/page-view", nil, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Session-ID"))
}

func TestIntegration_InvalidTrackingPayloadRejected(t *testing.T) {
	app := newTestApp(t)

	body := trackBody()
	body["variant"].(map[string]interface{})["price"] = map[string]interface{}{
		"amount": "not-a-number", "currencyCode": "ILS",
	}
	resp := app.post(t, "/api/v1/track/add-to-cart", body, "visitor-1")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, app.dataLayerEvents(t))
}
