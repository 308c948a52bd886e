package server

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trychooser/internal/chooser"
	"trychooser/internal/definition"
	"trychooser/internal/domain"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestRegistry(t *testing.T, ttl time.Duration, limit int) (*Registry, *fakeClock) {
	t.Helper()
	def, err := definition.Load("../../definitions/try.yaml")
	require.NoError(t, err)
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	r := NewRegistry(def, ttl, limit)
	r.now = clock.now
	return r, clock
}

func snapshot(s *chooser.Session) (domain.Snapshot, error) { return s.Snapshot(), nil }

func TestRegistry_ExpiresIdleSessions(t *testing.T) {
	r, clock := newTestRegistry(t, time.Hour, 0)

	idle, _, err := r.Create()
	require.NoError(t, err)
	busy, _, err := r.Create()
	require.NoError(t, err)

	clock.t = clock.t.Add(40 * time.Minute)
	_, err = r.Do(busy, snapshot)
	require.NoError(t, err)

	clock.t = clock.t.Add(30 * time.Minute)
	assert.Equal(t, 1, r.Expire())
	assert.Equal(t, 1, r.Len())

	_, err = r.Do(idle, snapshot)
	assert.True(t, errors.Is(err, domain.ErrSessionNotFound))
	_, err = r.Do(busy, snapshot)
	assert.NoError(t, err)
}

func TestRegistry_DoDropsExpiredSession(t *testing.T) {
	r, clock := newTestRegistry(t, time.Minute, 0)
	id, _, err := r.Create()
	require.NoError(t, err)

	clock.t = clock.t.Add(2 * time.Minute)
	_, err = r.Do(id, snapshot)
	assert.True(t, errors.Is(err, domain.ErrSessionNotFound))
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_ZeroTTLNeverExpires(t *testing.T) {
	r, clock := newTestRegistry(t, 0, 0)
	id, _, err := r.Create()
	require.NoError(t, err)

	clock.t = clock.t.Add(24 * 365 * time.Hour)
	assert.Equal(t, 0, r.Expire())
	_, err = r.Do(id, snapshot)
	assert.NoError(t, err)
}

func TestRegistry_Limit(t *testing.T) {
	r, clock := newTestRegistry(t, time.Hour, 2)

	_, _, err := r.Create()
	require.NoError(t, err)
	_, _, err = r.Create()
	require.NoError(t, err)

	_, _, err = r.Create()
	assert.True(t, errors.Is(err, ErrSessionLimit))
	assert.Equal(t, 2, r.Len())

	// Idle sessions are swept to make room.
	clock.t = clock.t.Add(2 * time.Hour)
	_, _, err = r.Create()
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())
}

func TestSweepInterval(t *testing.T) {
	assert.Equal(t, 30*time.Second, sweepInterval(time.Minute))
	assert.Equal(t, time.Minute, sweepInterval(24*time.Hour))
}
