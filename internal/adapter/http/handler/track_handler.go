package handler

import (
	"storefront-checkout-gateway/internal/adapter/http/dto"
	"storefront-checkout-gateway/internal/adapter/http/middleware"
	"storefront-checkout-gateway/internal/core/domain"
	"storefront-checkout-gateway/internal/service"
	"storefront-checkout-gateway/pkg/apperror"
	"storefront-checkout-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// TrackHandler handles the analytics tracking endpoints. Forwarding is
// best-effort: a 202 means the event was accepted, not that it was delivered.
type TrackHandler struct {
	registry *service.SessionRegistry
}

// NewTrackHandler creates a new TrackHandler.
func NewTrackHandler(registry *service.SessionRegistry) *TrackHandler {
	return &TrackHandler{registry: registry}
}

func (h *TrackHandler) session(c *gin.Context) *service.Session {
	return h.registry.Get(c.GetString(middleware.CtxSessionID))
}

// TrackAddToCart handles POST /api/v1/track/add-to-cart.
func (h *TrackHandler) TrackAddToCart(c *gin.Context) {
	var req dto.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	event := req.ToDomainEvent()
	if err := event.Validate(); err != nil {
		response.Error(c, apperror.ErrInvalidTrackingPayload(err.Error()))
		return
	}

	h.session(c).Tracker.TrackAddToCart(c.Request.Context(), event)
	response.Accepted(c, dto.TrackResponse{Accepted: true, Kind: string(domain.EventAddToCart)})
}

// TrackView handles POST /api/v1/track/view. Unlike the other tracking
// endpoints it accepts payloads with invalid variants: product identity is
// recorded either way, and a product seen once never re-fires, readiness or
// not.
func (h *TrackHandler) TrackView(c *gin.Context) {
	var req dto.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	product := req.Product.ToDomainProduct()
	h.session(c).Views.Observe(c.Request.Context(), &product)
	response.Accepted(c, dto.TrackResponse{Accepted: true, Kind: string(domain.EventViewItem)})
}

// TrackPageView handles POST /api/v1/track/page-view.
func (h *TrackHandler) TrackPageView(c *gin.Context) {
	h.session(c).Tracker.TrackPageView(c.Request.Context())
	response.Accepted(c, dto.TrackResponse{Accepted: true, Kind: "page_view"})
}
