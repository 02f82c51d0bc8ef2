package ports

import (
	"context"
	"time"

	"storefront-checkout-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// CartClient submits a checkout intent to the commerce backend and yields the
// result. The call is asynchronous from the coordinator's point of view; the
// client itself does not retry.
type CartClient interface {
	AddToCart(ctx context.Context, intent domain.CheckoutIntent) (*domain.CheckoutResult, error)
}

// EventJournal records forwarded analytics events for reconciliation.
// Optional: a nil journal disables recording. Never on the critical path.
type EventJournal interface {
	Record(ctx context.Context, entry *JournalEntry) error
}

// JournalEntry is one forwarded analytics event.
type JournalEntry struct {
	ID        uuid.UUID
	SessionID string
	Kind      string
	DedupKey  string
	Currency  string
	Value     float64
	CreatedAt time.Time
}

// TrackingService fires validated, deduplicated analytics events.
type TrackingService interface {
	TrackAddToCart(ctx context.Context, event domain.TrackableEvent)
	TrackBeginCheckout(ctx context.Context, event domain.TrackableEvent)
	TrackViewItem(ctx context.Context, event domain.TrackableEvent)
	TrackPageView(ctx context.Context)
}
