// Package tasks persists checklist rows scoped by the owning couple.
package tasks

import (
	"context"

	"github.com/aislekit/aislekit/internal/server/models"
)

type Repository interface {
	ListByCouple(ctx context.Context, coupleID string) ([]models.Task, error)
	Get(ctx context.Context, coupleID, id string) (*models.Task, error)
	Create(ctx context.Context, t *models.Task) (*models.Task, error)
	Update(ctx context.Context, t *models.Task) (*models.Task, error)
	Delete(ctx context.Context, coupleID, id string) error
}
