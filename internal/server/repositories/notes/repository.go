// Package notes persists planning notes scoped by the owning couple.
package notes

import (
	"context"

	"github.com/aislekit/aislekit/internal/server/models"
)

type Repository interface {
	ListByCouple(ctx context.Context, coupleID string) ([]models.Note, error)
	Get(ctx context.Context, coupleID, id string) (*models.Note, error)
	Create(ctx context.Context, n *models.Note) (*models.Note, error)
	Update(ctx context.Context, n *models.Note) (*models.Note, error)
	Delete(ctx context.Context, coupleID, id string) error
}
