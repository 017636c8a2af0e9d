package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestLimiter(capacity, refill float64) (*Limiter, *clock) {
	c := &clock{t: time.Date(2024, 5, 26, 19, 30, 0, 0, time.UTC)}
	l := New(capacity, refill)
	l.now = c.now
	return l, c
}

func TestAllowDrainsAndRefills(t *testing.T) {
	l, c := newTestLimiter(2, 1)

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))

	c.t = c.t.Add(500 * time.Millisecond)
	assert.False(t, l.Allow("a"))

	c.t = c.t.Add(500 * time.Millisecond)
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
}

func TestKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(1, 0)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"))
}

func TestRefillCapsAtCapacity(t *testing.T) {
	l, c := newTestLimiter(2, 10)
	l.Allow("a")

	c.t = c.t.Add(time.Hour)
	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
}

func TestPruneDropsIdleFullBuckets(t *testing.T) {
	l, c := newTestLimiter(2, 1)
	l.Allow("idle")
	c.t = c.t.Add(10 * time.Second)
	l.Allow("busy")
	l.Allow("busy")

	assert.Equal(t, 1, l.Prune(5*time.Second))
	assert.Equal(t, 1, l.Len())
}
