package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aislekit/aislekit/internal/client/api"
	"github.com/aislekit/aislekit/internal/client/cache"
	"github.com/aislekit/aislekit/internal/client/models"
	"github.com/aislekit/aislekit/internal/common"
)

// Collection is the one concrete Repository implementation, parameterized by
// entity type and resource path. Each entity family gets its own instance,
// not its own copy of this code.
type Collection[E models.Entity] struct {
	client   *api.Client
	resource string
	cache    *cache.TTL[[]E]
}

// NewCollection builds a repository for one resource ("guests", "tasks", …)
// with the given cache TTL.
func NewCollection[E models.Entity](client *api.Client, resource string, ttl time.Duration) *Collection[E] {
	return &Collection[E]{
		client:   client,
		resource: resource,
		cache:    cache.New[[]E](ttl),
	}
}

func (c *Collection[E]) path(tenant models.TenantID) string {
	return fmt.Sprintf("/couples/%s/%s", tenant, c.resource)
}

func requireTenant(tenant models.TenantID) error {
	if tenant.IsZero() {
		return fmt.Errorf("%w: %w", common.ErrUnauthorized, common.ErrNoTenant)
	}
	return nil
}

func (c *Collection[E]) FetchAll(ctx context.Context, tenant models.TenantID) ([]E, error) {
	if err := requireTenant(tenant); err != nil {
		return nil, err
	}

	if cached, ok := c.cache.Get(tenant); ok {
		return cached, nil
	}

	var items []E
	if err := c.client.Do(ctx, http.MethodGet, c.path(tenant), nil, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrFetchFailed, err)
	}
	if items == nil {
		items = []E{}
	}
	c.cache.Put(tenant, items)
	return items, nil
}

func (c *Collection[E]) Create(ctx context.Context, tenant models.TenantID, draft E) (E, error) {
	var zero E
	if err := requireTenant(tenant); err != nil {
		return zero, err
	}

	var created E
	if err := c.client.Do(ctx, http.MethodPost, c.path(tenant), draft, &created); err != nil {
		return zero, fmt.Errorf("%w: %w", common.ErrCreateFailed, err)
	}
	c.cache.Invalidate(tenant)
	return created, nil
}

func (c *Collection[E]) Update(ctx context.Context, tenant models.TenantID, e E) (E, error) {
	var zero E
	if err := requireTenant(tenant); err != nil {
		return zero, err
	}

	var updated E
	path := c.path(tenant) + "/" + e.EntityID()
	if err := c.client.Do(ctx, http.MethodPut, path, e, &updated); err != nil {
		return zero, fmt.Errorf("%w: %w", common.ErrUpdateFailed, err)
	}
	c.cache.Invalidate(tenant)
	return updated, nil
}

func (c *Collection[E]) Delete(ctx context.Context, tenant models.TenantID, id string) error {
	if err := requireTenant(tenant); err != nil {
		return err
	}

	err := c.client.Do(ctx, http.MethodDelete, c.path(tenant)+"/"+id, nil, nil)
	// A row deleted twice is still deleted.
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("%w: %w", common.ErrDeleteFailed, err)
	}
	c.cache.Invalidate(tenant)
	return nil
}

func (c *Collection[E]) InvalidateCache(tenant models.TenantID) {
	c.cache.Invalidate(tenant)
}
