package service

import (
	"context"
	"sync"

	"storefront-checkout-gateway/internal/core/domain"
)

// callRecorder records sink and navigator invocations in arrival order so
// tests can assert cross-component ordering (tracking before navigation).
type callRecorder struct {
	mu          sync.Mutex
	order       []string
	pushes      []map[string]interface{}
	pixelCalls  []pixelCall
	navigations []string
}

type pixelCall struct {
	action string
	event  string
	data   map[string]interface{}
}

func (r *callRecorder) record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, name)
}

func (r *callRecorder) callOrder() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

func (r *callRecorder) pushCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pushes)
}

func (r *callRecorder) pixelCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pixelCalls)
}

func (r *callRecorder) navCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.navigations)
}

func (r *callRecorder) lastPush() map[string]interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.pushes) == 0 {
		return nil
	}
	return r.pushes[len(r.pushes)-1]
}

func (r *callRecorder) lastPixel() pixelCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.pixelCalls) == 0 {
		return pixelCall{}
	}
	return r.pixelCalls[len(r.pixelCalls)-1]
}

func (r *callRecorder) lastNavigation() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.navigations) == 0 {
		return ""
	}
	return r.navigations[len(r.navigations)-1]
}

// recordingDataLayer implements ports.DataLayerSink against a callRecorder.
type recordingDataLayer struct {
	rec *callRecorder
	err error
}

func (s *recordingDataLayer) Push(_ context.Context, event map[string]interface{}) error {
	s.rec.mu.Lock()
	s.rec.order = append(s.rec.order, "push")
	s.rec.pushes = append(s.rec.pushes, event)
	s.rec.mu.Unlock()
	return s.err
}

// recordingPixel implements ports.PixelSink against a callRecorder.
type recordingPixel struct {
	rec *callRecorder
	err error
}

func (s *recordingPixel) Call(_ context.Context, action, event string, data map[string]interface{}) error {
	s.rec.mu.Lock()
	s.rec.order = append(s.rec.order, "pixel")
	s.rec.pixelCalls = append(s.rec.pixelCalls, pixelCall{action: action, event: event, data: data})
	s.rec.mu.Unlock()
	return s.err
}

// recordingNavigator implements ports.Navigator against a callRecorder.
type recordingNavigator struct {
	rec *callRecorder
}

func (n *recordingNavigator) NavigateTo(url string) {
	n.rec.mu.Lock()
	n.rec.order = append(n.rec.order, "navigate")
	n.rec.navigations = append(n.rec.navigations, url)
	n.rec.mu.Unlock()
}

// fakeCart implements ports.CartClient with a canned function.
type fakeCart struct {
	fn    func(domain.CheckoutIntent) (*domain.CheckoutResult, error)
	mu    sync.Mutex
	calls []domain.CheckoutIntent
}

func (f *fakeCart) AddToCart(_ context.Context, intent domain.CheckoutIntent) (*domain.CheckoutResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, intent)
	f.mu.Unlock()
	if f.fn == nil {
		return &domain.CheckoutResult{Success: true, CheckoutURL: "https://shop.example/checkout"}, nil
	}
	return f.fn(intent)
}

func (f *fakeCart) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
