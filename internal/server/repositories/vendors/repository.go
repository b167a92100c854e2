// Package vendors persists supplier rows scoped by the owning couple.
package vendors

import (
	"context"

	"github.com/aislekit/aislekit/internal/server/models"
)

type Repository interface {
	ListByCouple(ctx context.Context, coupleID string) ([]models.Vendor, error)
	Get(ctx context.Context, coupleID, id string) (*models.Vendor, error)
	Create(ctx context.Context, v *models.Vendor) (*models.Vendor, error)
	Update(ctx context.Context, v *models.Vendor) (*models.Vendor, error)
	Delete(ctx context.Context, coupleID, id string) error
}
