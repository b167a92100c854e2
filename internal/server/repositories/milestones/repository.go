// Package milestones persists timeline rows scoped by the owning couple.
package milestones

import (
	"context"

	"github.com/aislekit/aislekit/internal/server/models"
)

type Repository interface {
	ListByCouple(ctx context.Context, coupleID string) ([]models.Milestone, error)
	Get(ctx context.Context, coupleID, id string) (*models.Milestone, error)
	Create(ctx context.Context, m *models.Milestone) (*models.Milestone, error)
	Update(ctx context.Context, m *models.Milestone) (*models.Milestone, error)
	Delete(ctx context.Context, coupleID, id string) error
}
