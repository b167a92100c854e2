// Package remote implements the repository layer of the planner client: the
// sole gateway to the backend for one entity family, owning a short-lived
// per-couple cache that every successful mutation invalidates.
package remote

import (
	"context"

	"github.com/aislekit/aislekit/internal/client/models"
)

// Repository describes CRUD against the backend for one entity family.
// The couple id is an explicit parameter on every call; implementations
// must fail closed with common.ErrUnauthorized when it is missing.
type Repository[E models.Entity] interface {
	// FetchAll returns the couple's collection, served from cache while the
	// cache entry is fresh.
	FetchAll(ctx context.Context, tenant models.TenantID) ([]E, error)

	// Create inserts a draft and returns the canonical entity with the
	// server-assigned id and timestamps. Invalidates the couple's cache.
	Create(ctx context.Context, tenant models.TenantID, draft E) (E, error)

	// Update replaces the entity by id and returns the server's canonical
	// version. Invalidates the couple's cache.
	Update(ctx context.Context, tenant models.TenantID, e E) (E, error)

	// Delete removes the entity by id. Deleting an id the server no longer
	// knows counts as success. Invalidates the couple's cache.
	Delete(ctx context.Context, tenant models.TenantID, id string) error

	// InvalidateCache drops the couple's cached collection immediately; the
	// next FetchAll forces a remote read.
	InvalidateCache(tenant models.TenantID)
}
