package service

import (
	"sync"
	"time"

	"storefront-checkout-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// Session holds the per-visitor tracking state: one Tracker and one
// ViewTracker. Dedup state is scoped to the session and resets when the
// session expires, the server-side analog of a component remount.
type Session struct {
	ID       string
	Tracker  *Tracker
	Views    *ViewTracker
	lastSeen time.Time
}

// SessionRegistry owns visitor sessions with TTL eviction. Lookups refresh
// the TTL; an expired or unknown ID gets a fresh session with clean dedup
// state.
type SessionRegistry struct {
	dataLayer ports.DataLayerSink
	pixel     ports.PixelSink
	journal   ports.EventJournal
	ttl       time.Duration
	log       zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
	stop     chan struct{}
	stopOnce sync.Once
}

// NewSessionRegistry creates a registry and starts its eviction sweep.
// sweepInterval <= 0 disables the background sweep (expired sessions are
// still replaced lazily on access).
func NewSessionRegistry(
	dataLayer ports.DataLayerSink,
	pixel ports.PixelSink,
	journal ports.EventJournal,
	ttl time.Duration,
	sweepInterval time.Duration,
	log zerolog.Logger,
) *SessionRegistry {
	r := &SessionRegistry{
		dataLayer: dataLayer,
		pixel:     pixel,
		journal:   journal,
		ttl:       ttl,
		log:       log,
		sessions:  make(map[string]*Session),
		stop:      make(chan struct{}),
	}
	if sweepInterval > 0 {
		go r.sweepLoop(sweepInterval)
	}
	return r
}

// Get returns the session for id, creating it if absent or expired.
func (r *SessionRegistry) Get(id string) *Session {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok && now.Sub(s.lastSeen) < r.ttl {
		s.lastSeen = now
		return s
	}

	s := &Session{
		ID:       id,
		Tracker:  NewTracker(r.dataLayer, r.pixel, r.journal, id, true, r.log),
		Views:    NewViewTracker(r.dataLayer, r.pixel, id, true, r.log),
		lastSeen: now,
	}
	r.sessions[id] = s
	r.log.Debug().Str("session_id", id).Msg("visitor session created")
	return s
}

// Len returns the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Close stops the eviction sweep.
func (r *SessionRegistry) Close() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func (r *SessionRegistry) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.evictExpired()
		}
	}
}

func (r *SessionRegistry) evictExpired() {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) >= r.ttl {
			delete(r.sessions, id)
			r.log.Debug().Str("session_id", id).Msg("visitor session expired")
		}
	}
}
