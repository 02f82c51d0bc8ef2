package service

import (
	"context"
	"strings"
	"sync"

	"storefront-checkout-gateway/internal/core/domain"
	"storefront-checkout-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// ViewTracker fires a view_item event the first time a product's identity
// becomes available to a session, and never again for the same product.
//
// Identity-level dedup takes precedence over payload readiness: once a
// product ID has been considered, a later observation of the same ID does not
// retry even if the first observation was rejected for a malformed variant.
// A different product ID starts fresh.
type ViewTracker struct {
	dataLayer ports.DataLayerSink
	pixel     ports.PixelSink
	sessionID string
	enabled   bool
	log       zerolog.Logger

	mu                sync.Mutex
	previousProductID string
}

// NewViewTracker creates a ViewTracker scoped to one visitor session.
func NewViewTracker(
	dataLayer ports.DataLayerSink,
	pixel ports.PixelSink,
	sessionID string,
	enabled bool,
	log zerolog.Logger,
) *ViewTracker {
	return &ViewTracker{
		dataLayer: dataLayer,
		pixel:     pixel,
		sessionID: sessionID,
		enabled:   enabled,
		log:       log,
	}
}

// Observe considers a product value. A nil product means "not ready yet" and
// is silently skipped. Only the first observation of a new, valid product
// identity forwards a view_item event.
func (v *ViewTracker) Observe(ctx context.Context, product *domain.Product) {
	if !v.enabled {
		return
	}

	if product == nil {
		v.log.Debug().Msg("product not ready yet, waiting")
		return
	}

	if strings.TrimSpace(product.ID) == "" {
		v.log.Warn().Msg("missing or empty product.id, skipping view tracking")
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	// Same identity as already considered: nothing to do, regardless of how
	// the earlier observation went.
	if product.ID == v.previousProductID {
		return
	}
	v.previousProductID = product.ID

	variant := product.DefaultVariant()
	if variant == nil {
		v.log.Warn().Str("product_id", product.ID).Msg("missing default variant, skipping view tracking")
		return
	}
	if strings.TrimSpace(variant.ID) == "" {
		v.log.Warn().Str("product_id", product.ID).Msg("missing or empty variant.id, skipping view tracking")
		return
	}
	if strings.TrimSpace(variant.Price.Amount) == "" {
		v.log.Warn().Str("product_id", product.ID).Msg("missing or empty price.amount, skipping view tracking")
		return
	}
	price, err := variant.UnitPrice()
	if err != nil {
		v.log.Warn().
			Str("product_id", product.ID).
			Str("amount", variant.Price.Amount).
			Msg("invalid price, skipping view tracking")
		return
	}
	if strings.TrimSpace(variant.Price.CurrencyCode) == "" {
		v.log.Warn().Str("product_id", product.ID).Msg("missing or empty currency, skipping view tracking")
		return
	}

	event := domain.TrackableEvent{Product: *product, Variant: *variant, Quantity: 1}
	if err := v.dataLayer.Push(ctx, event.DataLayerPayload(domain.EventViewItem)); err != nil {
		v.log.Warn().Err(err).Msg("data layer push failed for view_item")
	}
	if err := v.pixel.Call(ctx, domain.PixelActionTrack, domain.PixelViewContent, event.PixelPayload()); err != nil {
		v.log.Warn().Err(err).Msg("pixel ViewContent call failed")
	}

	v.log.Info().
		Str("product_id", product.ID).
		Str("variant_id", variant.ID).
		Float64("price", price).
		Str("currency", variant.Price.CurrencyCode).
		Msg("view_item tracked")
}
