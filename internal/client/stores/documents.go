package stores

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aislekit/aislekit/internal/client/api"
	"github.com/aislekit/aislekit/internal/client/models"
	"github.com/aislekit/aislekit/internal/client/remote"
	"github.com/aislekit/aislekit/internal/client/store"
	"github.com/aislekit/aislekit/internal/logging"
	"github.com/aislekit/aislekit/internal/netx"
	"github.com/google/uuid"
)

// Presigner issues upload/download URLs for document payloads. *api.Client
// satisfies it.
type Presigner interface {
	DocumentUploadURL(ctx context.Context, tenant models.TenantID, documentID string) (*api.PresignedUpload, error)
	DocumentDownloadURL(ctx context.Context, tenant models.TenantID, documentID string) (string, error)
}

type Documents struct {
	*store.Store[models.Document]
	presigner Presigner
	http      *http.Client
}

func NewDocuments(repo remote.Repository[models.Document], presigner Presigner, logger logging.Logger) *Documents {
	return &Documents{
		Store:     store.New[models.Document](repo, logger),
		presigner: presigner,
		http:      &http.Client{},
	}
}

// Upload transfers the payload to object storage through a presigned URL and
// then records the document metadata through the usual optimistic create.
func (d *Documents) Upload(ctx context.Context, tenant models.TenantID, name, contentType string, payload []byte) error {
	draft := models.Document{
		ID:          uuid.NewString(),
		CoupleID:    string(tenant),
		Name:        name,
		ContentType: contentType,
		SizeBytes:   int64(len(payload)),
	}

	up, err := d.presigner.DocumentUploadURL(ctx, tenant, draft.ID)
	if err != nil {
		return fmt.Errorf("requesting upload url: %w", err)
	}
	if err := netx.UploadToPresignedURL(ctx, d.http, up.URL, payload, contentType); err != nil {
		return fmt.Errorf("uploading payload: %w", err)
	}

	draft.StorageKey = up.StorageKey
	return d.Create(ctx, tenant, draft)
}

// Download fetches a document's payload through a presigned URL.
func (d *Documents) Download(ctx context.Context, tenant models.TenantID, id string) ([]byte, error) {
	url, err := d.presigner.DocumentDownloadURL(ctx, tenant, id)
	if err != nil {
		return nil, fmt.Errorf("requesting download url: %w", err)
	}
	return netx.DownloadFromPresignedURL(ctx, d.http, url)
}

// ForVendor returns the documents linked to one vendor.
func (d *Documents) ForVendor(vendorID string) []models.Document {
	var out []models.Document
	for _, doc := range d.Collection() {
		if doc.VendorID == vendorID {
			out = append(out, doc)
		}
	}
	return out
}
