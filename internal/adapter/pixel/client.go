package pixel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront-checkout-gateway/config"

	"github.com/rs/zerolog"
)

// pixelRetryIntervals are the waits between delivery attempts. The conversions
// endpoint deduplicates on event_id, so a retried event is never double counted.
var pixelRetryIntervals = []time.Duration{250 * time.Millisecond, 1 * time.Second}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client forwards pixel events to the server-side conversions endpoint.
// An empty pixel ID means no pixel is installed; every call is skipped.
type Client struct {
	endpoint    string
	pixelID     string
	accessToken string
	httpClient  HTTPClient
	intervals   []time.Duration
	log         zerolog.Logger
}

// eventPayload is the JSON body sent to the conversions endpoint.
type eventPayload struct {
	PixelID   string                 `json:"pixel_id"`
	Action    string                 `json:"action"`
	EventName string                 `json:"event_name"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Timestamp int64                  `json:"timestamp"`
}

// NewClient creates a conversions client. Events are posted to
// {endpoint}/{pixel_id}/events.
func NewClient(cfg config.PixelConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	endpoint := cfg.Endpoint
	if cfg.PixelID != "" {
		endpoint = fmt.Sprintf("%s/%s/events", strings.TrimRight(cfg.Endpoint, "/"), cfg.PixelID)
	}
	return &Client{
		endpoint:    endpoint,
		pixelID:     cfg.PixelID,
		accessToken: cfg.AccessToken,
		httpClient:  httpClient,
		intervals:   pixelRetryIntervals,
		log:         log,
	}
}

// Call accepts one pixel event for delivery. Skips silently when no pixel is
// configured and skips with a warning on a malformed call. Delivery runs in
// the background with retries so a slow or down endpoint never stalls the
// caller; a nil return means accepted, not delivered.
func (c *Client) Call(ctx context.Context, action, eventName string, data map[string]interface{}) error {
	if c.pixelID == "" {
		c.log.Debug().Str("event_name", eventName).Msg("pixel: not installed, skipping")
		return nil
	}
	if action == "" || eventName == "" {
		c.log.Warn().Str("action", action).Str("event_name", eventName).Msg("pixel: malformed call, skipping")
		return nil
	}

	payload := eventPayload{
		PixelID:   c.pixelID,
		Action:    action,
		EventName: eventName,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal pixel event: %w", err)
	}

	// Fire async with retries. The request context is not reused: delivery
	// outlives the originating HTTP request.
	go c.deliverWithRetries(payloadBytes, eventName)

	return nil
}

func (c *Client) deliverWithRetries(payloadBytes []byte, eventName string) {
	var lastErr error

	for attempt := 0; attempt <= len(c.intervals); attempt++ {
		if attempt > 0 {
			time.Sleep(c.intervals[attempt-1])
		}

		req, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewReader(payloadBytes))
		if err != nil {
			c.log.Error().Err(err).Str("event_name", eventName).Msg("pixel: failed to create request")
			return
		}
		req.Header.Set("Content-Type", "application/json")
		if c.accessToken != "" {
			req.Header.Set("Authorization", "Bearer "+c.accessToken)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			c.log.Warn().Err(err).Str("event_name", eventName).Int("attempt", attempt+1).Msg("pixel: delivery failed")
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			c.log.Debug().Str("event_name", eventName).Int("attempt", attempt+1).Msg("pixel: delivered")
			return
		}

		// 4xx responses are not retried; the payload will not get better.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			c.log.Error().Str("event_name", eventName).Int("status", resp.StatusCode).Msg("pixel: endpoint rejected event")
			return
		}

		lastErr = fmt.Errorf("pixel endpoint returned status %d", resp.StatusCode)
		c.log.Warn().Str("event_name", eventName).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("pixel: non-2xx response, retrying")
	}

	c.log.Error().Err(lastErr).Str("event_name", eventName).Msg("pixel: all retry attempts exhausted")
}
