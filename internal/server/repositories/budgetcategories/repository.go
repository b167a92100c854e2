// Package budgetcategories persists budget envelope rows scoped by the
// owning couple.
package budgetcategories

import (
	"context"

	"github.com/aislekit/aislekit/internal/server/models"
)

type Repository interface {
	ListByCouple(ctx context.Context, coupleID string) ([]models.BudgetCategory, error)
	Get(ctx context.Context, coupleID, id string) (*models.BudgetCategory, error)
	Create(ctx context.Context, c *models.BudgetCategory) (*models.BudgetCategory, error)
	Update(ctx context.Context, c *models.BudgetCategory) (*models.BudgetCategory, error)
	Delete(ctx context.Context, coupleID, id string) error
}
