package ports

import "context"

// DataLayerSink is the tag-manager channel: an ordered queue of structured
// event objects drained by an external consumer. Push is best-effort; a sink
// failure must never break the caller's flow.
type DataLayerSink interface {
	Push(ctx context.Context, event map[string]interface{}) error
}

// PixelSink is the pixel-tracking channel. Call mirrors the pixel function
// shape: (action, eventName, data). Implementations deliver asynchronously
// and never propagate delivery failures.
type PixelSink interface {
	Call(ctx context.Context, action string, eventName string, data map[string]interface{}) error
}

// Navigator performs the terminal browser navigation to a checkout URL.
// In the HTTP adapter this resolves the pending request with the URL.
type Navigator interface {
	NavigateTo(url string)
}
