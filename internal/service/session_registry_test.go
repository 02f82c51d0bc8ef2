package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, rec *callRecorder, ttl, sweep time.Duration) *SessionRegistry {
	t.Helper()
	r := NewSessionRegistry(&recordingDataLayer{rec: rec}, &recordingPixel{rec: rec}, nil, ttl, sweep, zerolog.Nop())
	t.Cleanup(r.Close)
	return r
}

func TestSessionRegistry_SameIDSameSession(t *testing.T) {
	r := newTestRegistry(t, &callRecorder{}, time.Minute, 0)

	s1 := r.Get("visitor-1")
	s2 := r.Get("visitor-1")

	assert.Same(t, s1, s2)
	assert.Equal(t, 1, r.Len())
}

func TestSessionRegistry_DistinctIDsDistinctSessions(t *testing.T) {
	r := newTestRegistry(t, &callRecorder{}, time.Minute, 0)

	s1 := r.Get("visitor-1")
	s2 := r.Get("visitor-2")

	assert.NotSame(t, s1, s2)
	assert.Equal(t, 2, r.Len())
}

func TestSessionRegistry_ExpiryResetsDedupState(t *testing.T) {
	rec := &callRecorder{}
	r := newTestRegistry(t, rec, 20*time.Millisecond, 0)
	ctx := context.Background()

	ev := testEvent()
	r.Get("visitor-1").Tracker.TrackAddToCart(ctx, ev)
	r.Get("visitor-1").Tracker.TrackAddToCart(ctx, ev)
	require.Equal(t, 1, rec.pushCount())

	time.Sleep(30 * time.Millisecond)

	// The session is expired: the replacement instance has clean dedup state,
	// so the same tuple fires again.
	r.Get("visitor-1").Tracker.TrackAddToCart(ctx, ev)
	assert.Equal(t, 2, rec.pushCount())
}

func TestSessionRegistry_AccessRefreshesTTL(t *testing.T) {
	r := newTestRegistry(t, &callRecorder{}, 40*time.Millisecond, 0)

	s1 := r.Get("visitor-1")
	for i := 0; i < 4; i++ {
		time.Sleep(15 * time.Millisecond)
		assert.Same(t, s1, r.Get("visitor-1"))
	}
}

func TestSessionRegistry_SweepEvictsExpired(t *testing.T) {
	r := newTestRegistry(t, &callRecorder{}, 10*time.Millisecond, 5*time.Millisecond)

	r.Get("visitor-1")
	r.Get("visitor-2")
	require.Equal(t, 2, r.Len())

	assert.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, 5*time.Millisecond)
}
