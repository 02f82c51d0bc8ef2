package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EventKind names a data-layer event.
type EventKind string

const (
	EventAddToCart     EventKind = "add_to_cart"
	EventBeginCheckout EventKind = "begin_checkout"
	EventViewItem      EventKind = "view_item"
)

// Pixel event names. The pixel channel uses its own vocabulary.
const (
	PixelActionTrack      = "track"
	PixelAddToCart        = "AddToCart"
	PixelInitiateCheckout = "InitiateCheckout"
	PixelViewContent      = "ViewContent"
	PixelPageView         = "PageView"
)

// Validation errors. Each failure mode is distinct so callers can log exactly
// which field was rejected; none of them is ever surfaced to the sink path.
var (
	ErrMissingProduct   = errors.New("product is missing")
	ErrMissingVariant   = errors.New("variant is missing")
	ErrInvalidProductID = errors.New("product.id is missing or empty")
	ErrInvalidVariantID = errors.New("variant.id is missing or empty")
	ErrMissingAmount    = errors.New("variant.price.amount is missing or empty")
	ErrInvalidAmount    = errors.New("variant.price.amount is not a positive finite number")
	ErrMissingCurrency  = errors.New("variant.price.currencyCode is missing or empty")
	ErrInvalidQuantity  = errors.New("quantity is not a positive integer")
)

// Price is a monetary amount as the commerce backend reports it: a decimal
// string plus an ISO currency code. Never mutated after construction.
type Price struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// Variant is a purchasable product variant.
type Variant struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	Price Price  `json:"price"`
}

// Product carries the product identity plus its variants. Variant 0 is the
// default variant used for view tracking.
type Product struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Variants []Variant `json:"variants,omitempty"`
}

// DefaultVariant returns the first variant, or nil if there is none.
func (p *Product) DefaultVariant() *Variant {
	if p == nil || len(p.Variants) == 0 {
		return nil
	}
	return &p.Variants[0]
}

// TrackableEvent is a commerce event payload ready for the sinks. It must pass
// Validate before it may be forwarded anywhere.
type TrackableEvent struct {
	Product  Product
	Variant  Variant
	Quantity int
}

// Validate checks every field the sinks depend on. It returns the first
// failure found, in field order, as one of the sentinel errors above.
func (e *TrackableEvent) Validate() error {
	if e.Product.ID == "" && e.Product.Title == "" {
		return ErrMissingProduct
	}
	if strings.TrimSpace(e.Product.ID) == "" {
		return ErrInvalidProductID
	}
	if e.Variant.ID == "" && e.Variant.Price == (Price{}) {
		return ErrMissingVariant
	}
	if strings.TrimSpace(e.Variant.ID) == "" {
		return ErrInvalidVariantID
	}
	if strings.TrimSpace(e.Variant.Price.Amount) == "" {
		return ErrMissingAmount
	}
	if _, err := e.Variant.UnitPrice(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Variant.Price.CurrencyCode) == "" {
		return ErrMissingCurrency
	}
	if e.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// UnitPrice parses the price amount. Rejects NaN, infinities and
// non-positive values.
func (v *Variant) UnitPrice() (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(v.Price.Amount), 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, ErrInvalidAmount
	}
	return price, nil
}

// DedupKey is the stable identity of a tracked transaction event:
// product + variant + quantity. Two quantities of the same variant are
// distinct events.
func (e *TrackableEvent) DedupKey() string {
	return fmt.Sprintf("%s-%s-%d", e.Product.ID, e.Variant.ID, e.Quantity)
}

// ViewDedupKey is the identity of a view event. View tracking is per product,
// not per transaction.
func ViewDedupKey(productID string) string {
	return productID
}

// DataLayerPayload builds the structured event object the tag-manager queue
// consumes. The event must have passed Validate.
func (e *TrackableEvent) DataLayerPayload(kind EventKind) map[string]interface{} {
	price, _ := e.Variant.UnitPrice()
	currency := e.Variant.Price.CurrencyCode
	return map[string]interface{}{
		"event": string(kind),
		"ecommerce": map[string]interface{}{
			"currency": currency,
			"value":    price * float64(e.Quantity),
			"items": []map[string]interface{}{
				{
					"item_id":   e.Product.ID,
					"item_name": e.Product.Title,
					"price":     price,
					"currency":  currency,
					"quantity":  e.Quantity,
				},
			},
		},
	}
}

// PixelPayload builds the data object for a pixel track call.
func (e *TrackableEvent) PixelPayload() map[string]interface{} {
	price, _ := e.Variant.UnitPrice()
	return map[string]interface{}{
		"value":        price * float64(e.Quantity),
		"currency":     e.Variant.Price.CurrencyCode,
		"content_name": e.Product.Title,
		"content_ids":  []string{e.Product.ID},
	}
}
