package domain

// CheckoutIntent is a user's "buy variant V, quantity Q" request. It is
// consumed immediately by submission and not retained.
type CheckoutIntent struct {
	MerchandiseID string // opaque commerce identifier, must be non-empty
	Quantity      int    // must be >= 1
	CartID        string // optional: add lines to an existing cart
}

// CheckoutResult is the commerce backend's asynchronous answer to an intent.
//
// Seq is a monotonic sequence number the coordinator assigns per submission.
// Re-observing the same Seq is a re-render, not a new result, and must not
// trigger any side effect again.
type CheckoutResult struct {
	Seq         uint64
	Success     bool
	CheckoutURL string
	Error       string
}

// Ready reports whether this result actually carries a usable checkout URL.
// Success without a URL is "not yet ready", never success.
func (r *CheckoutResult) Ready() bool {
	return r.Success && r.CheckoutURL != ""
}

// Failed reports whether the backend rejected the intent.
func (r *CheckoutResult) Failed() bool {
	return r.Error != ""
}

// CheckoutState is the coordinator's lifecycle state for one intent.
type CheckoutState string

const (
	StateIdle              CheckoutState = "IDLE"
	StateSubmitting        CheckoutState = "SUBMITTING"
	StateRedirectScheduled CheckoutState = "REDIRECT_SCHEDULED"
	StateRedirected        CheckoutState = "REDIRECTED"
	StateFailed            CheckoutState = "FAILED"
)

// Terminal reports whether no further action is possible for this intent.
func (s CheckoutState) Terminal() bool {
	return s == StateRedirected
}
