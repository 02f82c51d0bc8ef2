package service

import (
	"context"
	"sync"
	"time"

	"storefront-checkout-gateway/internal/core/domain"
	"storefront-checkout-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// CoordinatorConfig tunes one checkout coordinator.
//
// Product and Variant are the optional tracking context: when both are set, a
// begin_checkout event fires before the redirect is scheduled. RedirectDelay
// is the grace period between tracking and navigation, so the tracking
// beacons can leave before the page unloads.
type CoordinatorConfig struct {
	RedirectDelay time.Duration
	Product       *domain.Product
	Variant       *domain.Variant
}

const defaultRedirectDelay = 250 * time.Millisecond

// Coordinator drives the checkout-initiation flow for one intent: submit to
// the commerce backend, observe the asynchronous result, fire tracking, then
// navigate after the grace delay.
//
// Results carry a monotonic sequence number assigned per submission.
// Re-observing a sequence already processed is a no-op, which makes the
// redirect at-most-once per result no matter how often the same result value
// is observed.
type Coordinator struct {
	cart    ports.CartClient
	tracker ports.TrackingService
	nav     ports.Navigator
	delay   time.Duration
	product *domain.Product
	variant *domain.Variant
	log     zerolog.Logger

	mu          sync.Mutex
	state       domain.CheckoutState
	seq         uint64 // sequence assigned to the most recent submission
	observedSeq uint64 // highest result sequence already processed
	redirectSeq uint64 // sequence whose redirect has been scheduled
	quantity    int
	timer       *time.Timer
	closed      bool
	lastError   string
}

// NewCoordinator creates a coordinator in the Idle state.
func NewCoordinator(
	cart ports.CartClient,
	tracker ports.TrackingService,
	nav ports.Navigator,
	cfg CoordinatorConfig,
	log zerolog.Logger,
) *Coordinator {
	delay := cfg.RedirectDelay
	if delay <= 0 {
		delay = defaultRedirectDelay
	}
	return &Coordinator{
		cart:    cart,
		tracker: tracker,
		nav:     nav,
		delay:   delay,
		product: cfg.Product,
		variant: cfg.Variant,
		log:     log,
		state:   domain.StateIdle,
	}
}

// GoToCheckout submits a buy intent for merchandiseID. An empty merchandiseID
// is a logged no-op, not an error. Quantity below 1 defaults to 1.
//
// The coordinator does not enforce single-flight submission; preventing
// double-submits while one is in flight is the caller's job (e.g. disabling
// the buy control).
func (c *Coordinator) GoToCheckout(ctx context.Context, merchandiseID string, quantity int) {
	if merchandiseID == "" {
		c.log.Error().Msg("no merchandise ID provided, checkout not submitted")
		return
	}
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.seq++
	seq := c.seq
	c.quantity = quantity
	c.state = domain.StateSubmitting
	c.mu.Unlock()

	intent := domain.CheckoutIntent{MerchandiseID: merchandiseID, Quantity: quantity}

	go func() {
		result, err := c.cart.AddToCart(ctx, intent)
		if err != nil {
			result = &domain.CheckoutResult{Error: err.Error()}
		}
		result.Seq = seq
		c.Observe(ctx, *result)
	}()
}

// Observe processes a checkout result. It is safe to call repeatedly with the
// same result; only the first observation of a sequence has side effects.
func (c *Coordinator) Observe(ctx context.Context, result domain.CheckoutResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if result.Seq == 0 {
		result.Seq = c.seq
	}
	if result.Seq <= c.observedSeq {
		c.log.Debug().Uint64("seq", result.Seq).Msg("result already processed, ignoring re-observation")
		return
	}
	c.observedSeq = result.Seq

	switch {
	case result.Ready():
		if c.redirectSeq == result.Seq {
			return
		}
		c.redirectSeq = result.Seq

		// Tracking fires before the redirect is scheduled, never after. The
		// grace delay exists precisely so these beacons can flush.
		if c.product != nil && c.variant != nil {
			c.tracker.TrackBeginCheckout(ctx, domain.TrackableEvent{
				Product:  *c.product,
				Variant:  *c.variant,
				Quantity: c.trackingQuantity(),
			})
		}

		c.state = domain.StateRedirectScheduled
		url := result.CheckoutURL
		c.timer = time.AfterFunc(c.delay, func() {
			c.fireRedirect(url)
		})

		c.log.Info().
			Uint64("seq", result.Seq).
			Dur("delay", c.delay).
			Msg("checkout URL received, redirect scheduled")

	case result.Failed():
		c.state = domain.StateFailed
		c.lastError = result.Error
		c.log.Error().
			Uint64("seq", result.Seq).
			Str("error", result.Error).
			Msg("checkout submission failed")

	default:
		// Success without a URL means the backend has not produced a usable
		// checkout yet. Keep waiting.
		c.state = domain.StateSubmitting
		c.log.Debug().Uint64("seq", result.Seq).Msg("result has no checkout URL yet, still waiting")
	}
}

func (c *Coordinator) fireRedirect(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.nav.NavigateTo(url)
	c.state = domain.StateRedirected
	c.log.Info().Str("url", url).Msg("redirected to checkout")
}

// State returns the coordinator's current lifecycle state.
func (c *Coordinator) State() domain.CheckoutState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastError returns the most recent submission error, if any.
func (c *Coordinator) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastError
}

// Close tears down the coordinator and cancels any pending redirect so a
// disposed instance can never navigate late.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
	}
}

func (c *Coordinator) trackingQuantity() int {
	if c.quantity < 1 {
		return 1
	}
	return c.quantity
}
