package service

import (
	"context"
	"sync"
	"time"

	"storefront-checkout-gateway/internal/core/domain"
	"storefront-checkout-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Tracker implements ports.TrackingService with at-most-once delivery per
// dedup key, per Tracker instance. Dedup state lives and dies with the
// instance: a new session gets a new Tracker and a clean slate.
//
// Tracking is best-effort by contract. Every failure mode — disabled runtime,
// malformed payload, sink error — is logged and swallowed; nothing here may
// ever break the checkout flow of the caller.
type Tracker struct {
	dataLayer ports.DataLayerSink
	pixel     ports.PixelSink
	journal   ports.EventJournal // nil = journaling disabled
	sessionID string
	enabled   bool
	log       zerolog.Logger

	mu            sync.Mutex
	fired         map[domain.EventKind]map[string]struct{}
	pageViewFired bool
}

// NewTracker creates a Tracker scoped to one visitor session.
// enabled=false models a non-serving context: every call becomes a logged no-op.
func NewTracker(
	dataLayer ports.DataLayerSink,
	pixel ports.PixelSink,
	journal ports.EventJournal,
	sessionID string,
	enabled bool,
	log zerolog.Logger,
) *Tracker {
	return &Tracker{
		dataLayer: dataLayer,
		pixel:     pixel,
		journal:   journal,
		sessionID: sessionID,
		enabled:   enabled,
		log:       log,
		fired:     make(map[domain.EventKind]map[string]struct{}),
	}
}

// TrackAddToCart fires add_to_cart once per product+variant+quantity tuple.
func (t *Tracker) TrackAddToCart(ctx context.Context, event domain.TrackableEvent) {
	t.track(ctx, domain.EventAddToCart, domain.PixelAddToCart, event, event.DedupKey())
}

// TrackBeginCheckout fires begin_checkout once per product+variant+quantity tuple.
func (t *Tracker) TrackBeginCheckout(ctx context.Context, event domain.TrackableEvent) {
	t.track(ctx, domain.EventBeginCheckout, domain.PixelInitiateCheckout, event, event.DedupKey())
}

// TrackViewItem fires view_item once per product. View dedup is per product
// identity, not per transaction tuple.
func (t *Tracker) TrackViewItem(ctx context.Context, event domain.TrackableEvent) {
	t.track(ctx, domain.EventViewItem, domain.PixelViewContent, event, domain.ViewDedupKey(event.Product.ID))
}

// TrackPageView fires the pixel PageView event once per session.
func (t *Tracker) TrackPageView(ctx context.Context) {
	if !t.enabled {
		t.log.Warn().Msg("tracking disabled, skipping page_view")
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pageViewFired {
		t.log.Debug().Str("session_id", t.sessionID).Msg("page_view already fired")
		return
	}
	if err := t.pixel.Call(ctx, domain.PixelActionTrack, domain.PixelPageView, nil); err != nil {
		t.log.Warn().Err(err).Msg("pixel page_view call failed")
	}
	t.pageViewFired = true
}

func (t *Tracker) track(ctx context.Context, kind domain.EventKind, pixelEvent string, event domain.TrackableEvent, key string) {
	if !t.enabled {
		t.log.Warn().Str("event", string(kind)).Msg("tracking disabled, skipping event")
		return
	}

	if err := event.Validate(); err != nil {
		t.log.Warn().
			Err(err).
			Str("event", string(kind)).
			Str("product_id", event.Product.ID).
			Msg("invalid tracking payload, skipping event")
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Dedup check strictly before forwarding.
	if _, seen := t.firedSet(kind)[key]; seen {
		t.log.Debug().
			Str("event", string(kind)).
			Str("key", key).
			Msg("event already fired for key, skipping")
		return
	}

	if err := t.dataLayer.Push(ctx, event.DataLayerPayload(kind)); err != nil {
		t.log.Warn().Err(err).Str("event", string(kind)).Msg("data layer push failed")
	}
	if err := t.pixel.Call(ctx, domain.PixelActionTrack, pixelEvent, event.PixelPayload()); err != nil {
		t.log.Warn().Err(err).Str("event", pixelEvent).Msg("pixel call failed")
	}

	t.firedSet(kind)[key] = struct{}{}

	t.log.Info().
		Str("event", string(kind)).
		Str("key", key).
		Str("session_id", t.sessionID).
		Msg("event tracked")

	t.recordJournal(ctx, kind, key, event)
}

func (t *Tracker) firedSet(kind domain.EventKind) map[string]struct{} {
	set, ok := t.fired[kind]
	if !ok {
		set = make(map[string]struct{})
		t.fired[kind] = set
	}
	return set
}

// recordJournal persists the forwarded event for reconciliation. Best-effort:
// a journal failure is logged and ignored.
func (t *Tracker) recordJournal(ctx context.Context, kind domain.EventKind, key string, event domain.TrackableEvent) {
	if t.journal == nil {
		return
	}
	price, _ := event.Variant.UnitPrice()
	entry := &ports.JournalEntry{
		ID:        uuid.New(),
		SessionID: t.sessionID,
		Kind:      string(kind),
		DedupKey:  key,
		Currency:  event.Variant.Price.CurrencyCode,
		Value:     price * float64(event.Quantity),
		CreatedAt: time.Now().UTC(),
	}
	if err := t.journal.Record(ctx, entry); err != nil {
		t.log.Warn().Err(err).Str("event", string(kind)).Msg("event journal record failed")
	}
}
