// Package couples persists the tenant rows every planning record hangs off.
package couples

import (
	"context"

	"github.com/aislekit/aislekit/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, couple *models.Couple) (*models.Couple, error)
	Get(ctx context.Context, id string) (*models.Couple, error)
}
