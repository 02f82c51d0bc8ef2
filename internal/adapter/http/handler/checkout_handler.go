package handler

import (
	"time"

	"storefront-checkout-gateway/config"
	"storefront-checkout-gateway/internal/adapter/http/dto"
	"storefront-checkout-gateway/internal/adapter/http/middleware"
	"storefront-checkout-gateway/internal/core/domain"
	"storefront-checkout-gateway/internal/core/ports"
	"storefront-checkout-gateway/internal/service"
	"storefront-checkout-gateway/pkg/apperror"
	"storefront-checkout-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// channelNavigator resolves the redirect target into a channel the handler
// can wait on. The browser performs the actual navigation; the server only
// decides when and where.
type channelNavigator struct {
	ch chan string
}

func newChannelNavigator() *channelNavigator {
	return &channelNavigator{ch: make(chan string, 1)}
}

func (n *channelNavigator) NavigateTo(url string) {
	select {
	case n.ch <- url:
	default:
	}
}

// CheckoutHandler handles checkout initiation.
type CheckoutHandler struct {
	cart     ports.CartClient
	registry *service.SessionRegistry
	cfg      config.CheckoutConfig
	log      zerolog.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(cart ports.CartClient, registry *service.SessionRegistry, cfg config.CheckoutConfig, log zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{cart: cart, registry: registry, cfg: cfg, log: log}
}

// InitiateCheckout handles POST /api/v1/checkout. It runs one coordinator for
// the request: submit the intent, fire begin_checkout tracking on success,
// hold the redirect for the grace delay, then return the checkout URL.
func (h *CheckoutHandler) InitiateCheckout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if req.MerchandiseID == "" {
			response.Error(c, apperror.ErrMissingMerchandiseID())
			return
		}
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if req.Quantity < 0 {
		response.Error(c, apperror.ErrInvalidQuantity())
		return
	}

	session := h.registry.Get(c.GetString(middleware.CtxSessionID))

	coordCfg := service.CoordinatorConfig{RedirectDelay: h.cfg.RedirectDelay}
	if req.Product != nil && req.Variant != nil {
		product := req.Product.ToDomainProduct()
		variant := req.Variant.ToDomainVariant()
		coordCfg.Product = &product
		coordCfg.Variant = &variant
	}

	nav := newChannelNavigator()
	coord := service.NewCoordinator(h.cart, session.Tracker, nav, coordCfg, h.log)
	defer coord.Close()

	ctx := c.Request.Context()
	coord.GoToCheckout(ctx, req.MerchandiseID, req.Quantity)
	if coord.State() == domain.StateIdle {
		response.Error(c, apperror.ErrMissingMerchandiseID())
		return
	}

	timeout := h.cfg.SubmitTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	poll := time.NewTicker(25 * time.Millisecond)
	defer poll.Stop()

	for {
		select {
		case url := <-nav.ch:
			response.OK(c, dto.CheckoutResponse{
				CheckoutURL: url,
				State:       string(domain.StateRedirected),
			})
			return
		case <-poll.C:
			if coord.State() == domain.StateFailed {
				response.Error(c, apperror.ErrCheckoutRejected(coord.LastError()))
				return
			}
		case <-deadline.C:
			response.Error(c, apperror.ErrCheckoutTimeout())
			return
		case <-ctx.Done():
			response.Error(c, apperror.ErrCheckoutTimeout())
			return
		}
	}
}
