// Package expenses persists spend rows scoped by the owning couple.
package expenses

import (
	"context"

	"github.com/aislekit/aislekit/internal/server/models"
)

type Repository interface {
	ListByCouple(ctx context.Context, coupleID string) ([]models.Expense, error)
	Get(ctx context.Context, coupleID, id string) (*models.Expense, error)
	Create(ctx context.Context, e *models.Expense) (*models.Expense, error)
	Update(ctx context.Context, e *models.Expense) (*models.Expense, error)
	Delete(ctx context.Context, coupleID, id string) error
}
