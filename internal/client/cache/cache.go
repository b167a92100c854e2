// Package cache implements the short-lived collection cache owned by each
// remote repository. Entries are scoped per couple and expire after a TTL;
// any successful mutation invalidates the owning couple's entry explicitly.
package cache

import (
	"sync"
	"time"

	"github.com/aislekit/aislekit/internal/client/models"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// TTL is a tenant-keyed cache with a fixed time-to-live. The zero value is
// not usable; construct with New.
type TTL[V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[models.TenantID]entry[V]
	now     func() time.Time
}

func New[V any](ttl time.Duration) *TTL[V] {
	return &TTL[V]{
		ttl:     ttl,
		entries: make(map[models.TenantID]entry[V]),
		now:     time.Now,
	}
}

// NewWithClock is New with an injected clock, for tests.
func NewWithClock[V any](ttl time.Duration, now func() time.Time) *TTL[V] {
	c := New[V](ttl)
	c.now = now
	return c
}

// Get returns the cached value for the given couple if it is still fresh.
// Entries belonging to other couples are never returned, regardless of age.
func (c *TTL[V]) Get(tenant models.TenantID) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[tenant]
	if !ok {
		return zero, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, tenant)
		return zero, false
	}
	return e.value, true
}

// Put stores a value for the given couple with a fresh timestamp.
func (c *TTL[V]) Put(tenant models.TenantID, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[tenant] = entry[V]{value: v, storedAt: c.now()}
}

// Invalidate drops the entry for one couple. The next Get misses and forces
// a remote read.
func (c *TTL[V]) Invalidate(tenant models.TenantID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, tenant)
}

// InvalidateAll drops every entry, e.g. on sign-out.
func (c *TTL[V]) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[models.TenantID]entry[V])
}
