// Package documents persists document metadata rows. Payloads live in
// object storage and are reached through presigned URLs only.
package documents

import (
	"context"

	"github.com/aislekit/aislekit/internal/server/models"
)

type Repository interface {
	ListByCouple(ctx context.Context, coupleID string) ([]models.Document, error)
	Get(ctx context.Context, coupleID, id string) (*models.Document, error)
	Create(ctx context.Context, d *models.Document) (*models.Document, error)
	Update(ctx context.Context, d *models.Document) (*models.Document, error)
	Delete(ctx context.Context, coupleID, id string) error
}
