// Package remotetest provides a single generic in-memory fake implementing
// remote.Repository, replacing per-test hand-rolled mocks.
package remotetest

import (
	"context"
	"fmt"
	"sync"

	"github.com/aislekit/aislekit/internal/client/models"
	"github.com/aislekit/aislekit/internal/common"
	"github.com/google/uuid"
)

// Fake is a scriptable Repository backed by a per-tenant map. Set the Err
// fields to force the next matching call to fail. All methods are safe for
// concurrent use.
type Fake[E models.Entity] struct {
	mu   sync.Mutex
	data map[models.TenantID][]E

	FetchErr  error
	CreateErr error
	UpdateErr error
	DeleteErr error

	// Canonicalize, when set, rewrites the entity the fake returns from
	// Create/Update, standing in for server-side field assignment.
	Canonicalize func(E) E

	FetchCalls      int
	CreateCalls     int
	UpdateCalls     int
	DeleteCalls     int
	InvalidateCalls int
}

func NewFake[E models.Entity]() *Fake[E] {
	return &Fake[E]{data: make(map[models.TenantID][]E)}
}

// Seed replaces the stored collection for a tenant.
func (f *Fake[E]) Seed(tenant models.TenantID, items ...E) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[tenant] = append([]E(nil), items...)
}

// Stored returns a copy of the stored collection for a tenant.
func (f *Fake[E]) Stored(tenant models.TenantID) []E {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]E(nil), f.data[tenant]...)
}

func (f *Fake[E]) FetchAll(_ context.Context, tenant models.TenantID) ([]E, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FetchCalls++
	if err := requireTenant(tenant); err != nil {
		return nil, err
	}
	if f.FetchErr != nil {
		return nil, f.FetchErr
	}
	return append([]E(nil), f.data[tenant]...), nil
}

func (f *Fake[E]) Create(_ context.Context, tenant models.TenantID, draft E) (E, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	var zero E
	if err := requireTenant(tenant); err != nil {
		return zero, err
	}
	if f.CreateErr != nil {
		return zero, f.CreateErr
	}
	created := draft
	if f.Canonicalize != nil {
		created = f.Canonicalize(draft)
	}
	f.data[tenant] = append(f.data[tenant], created)
	return created, nil
}

func (f *Fake[E]) Update(_ context.Context, tenant models.TenantID, e E) (E, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls++
	var zero E
	if err := requireTenant(tenant); err != nil {
		return zero, err
	}
	if f.UpdateErr != nil {
		return zero, f.UpdateErr
	}
	updated := e
	if f.Canonicalize != nil {
		updated = f.Canonicalize(e)
	}
	for i, cur := range f.data[tenant] {
		if cur.EntityID() == e.EntityID() {
			f.data[tenant][i] = updated
			return updated, nil
		}
	}
	return zero, fmt.Errorf("%w: %s", common.ErrNotFound, e.EntityID())
}

func (f *Fake[E]) Delete(_ context.Context, tenant models.TenantID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	if err := requireTenant(tenant); err != nil {
		return err
	}
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	items := f.data[tenant]
	for i, cur := range items {
		if cur.EntityID() == id {
			f.data[tenant] = append(items[:i:i], items[i+1:]...)
			return nil
		}
	}
	// Idempotent: unknown ids are already gone.
	return nil
}

func (f *Fake[E]) InvalidateCache(models.TenantID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.InvalidateCalls++
}

func requireTenant(tenant models.TenantID) error {
	if tenant.IsZero() {
		return fmt.Errorf("%w: %w", common.ErrUnauthorized, common.ErrNoTenant)
	}
	return nil
}

// NewID returns a fresh identifier, convenient for Canonicalize hooks.
func NewID() string { return uuid.NewString() }
