// Package guests persists guest-list rows. All queries are scoped by the
// owning couple; an id alone never selects a row.
package guests

import (
	"context"

	"github.com/aislekit/aislekit/internal/server/models"
)

type Repository interface {
	ListByCouple(ctx context.Context, coupleID string) ([]models.Guest, error)
	Get(ctx context.Context, coupleID, id string) (*models.Guest, error)
	Create(ctx context.Context, g *models.Guest) (*models.Guest, error)
	Update(ctx context.Context, g *models.Guest) (*models.Guest, error)
	Delete(ctx context.Context, coupleID, id string) error
}
