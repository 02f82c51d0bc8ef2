package dto

import "storefront-checkout-gateway/internal/core/domain"

// CheckoutRequest is the request body for checkout initiation.
type CheckoutRequest struct {
	MerchandiseID string          `json:"merchandise_id" binding:"required,max=200,merchandise_gid"`
	Quantity      int             `json:"quantity,omitempty"`
	CartID        string          `json:"cart_id,omitempty" binding:"omitempty,max=200"`
	Product       *ProductPayload `json:"product,omitempty"`
	Variant       *VariantPayload `json:"variant,omitempty"`
}

// TrackRequest is the request body for the add-to-cart and view tracking
// endpoints. Payload validation beyond shape happens in the domain layer.
type TrackRequest struct {
	Product  ProductPayload  `json:"product" binding:"required"`
	Variant  *VariantPayload `json:"variant,omitempty"`
	Quantity int             `json:"quantity,omitempty"`
}

// ProductPayload mirrors the storefront product shape.
type ProductPayload struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Variants []VariantPayload `json:"variants,omitempty"`
}

// VariantPayload mirrors the storefront variant shape.
type VariantPayload struct {
	ID    string       `json:"id"`
	Title string       `json:"title,omitempty"`
	Price PricePayload `json:"price"`
}

// PricePayload is a money amount in storefront string form.
type PricePayload struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// CheckoutResponse is the response body for a completed checkout initiation.
type CheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
	State       string `json:"state"`
}

// TrackResponse acknowledges a tracking submission.
type TrackResponse struct {
	Accepted bool   `json:"accepted"`
	Kind     string `json:"kind"`
}

// ToDomainProduct converts the payload to the domain type.
func (p *ProductPayload) ToDomainProduct() domain.Product {
	prod := domain.Product{ID: p.ID, Title: p.Title}
	for _, v := range p.Variants {
		prod.Variants = append(prod.Variants, v.ToDomainVariant())
	}
	return prod
}

// ToDomainVariant converts the payload to the domain type.
func (v *VariantPayload) ToDomainVariant() domain.Variant {
	return domain.Variant{
		ID:    v.ID,
		Title: v.Title,
		Price: domain.Price{
			Amount:       v.Price.Amount,
			CurrencyCode: v.Price.CurrencyCode,
		},
	}
}

// ToDomainEvent builds a TrackableEvent from the request. When no variant is
// given the product's first variant is used, matching view tracking.
func (r *TrackRequest) ToDomainEvent() domain.TrackableEvent {
	event := domain.TrackableEvent{
		Product:  r.Product.ToDomainProduct(),
		Quantity: r.Quantity,
	}
	if r.Variant != nil {
		event.Variant = r.Variant.ToDomainVariant()
	} else if dv := event.Product.DefaultVariant(); dv != nil {
		event.Variant = *dv
	}
	if event.Quantity == 0 {
		event.Quantity = 1
	}
	return event
}
