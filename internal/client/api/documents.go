package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aislekit/aislekit/internal/client/models"
	"github.com/aislekit/aislekit/internal/common"
)

// PresignedUpload is the server's answer to an upload-URL request: where to
// PUT the payload and the storage key to record on the document.
type PresignedUpload struct {
	URL        string `json:"url"`
	StorageKey string `json:"storage_key"`
}

type presignedDownload struct {
	URL string `json:"url"`
}

// DocumentUploadURL asks the server for a presigned PUT URL for the given
// document's payload.
func (c *Client) DocumentUploadURL(ctx context.Context, tenant models.TenantID, documentID string) (*PresignedUpload, error) {
	if tenant.IsZero() {
		return nil, fmt.Errorf("%w: %w", common.ErrUnauthorized, common.ErrNoTenant)
	}
	var out PresignedUpload
	path := fmt.Sprintf("/couples/%s/documents/%s/upload-url", tenant, documentID)
	if err := c.Do(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DocumentDownloadURL asks the server for a presigned GET URL for the given
// document's payload.
func (c *Client) DocumentDownloadURL(ctx context.Context, tenant models.TenantID, documentID string) (string, error) {
	if tenant.IsZero() {
		return "", fmt.Errorf("%w: %w", common.ErrUnauthorized, common.ErrNoTenant)
	}
	var out presignedDownload
	path := fmt.Sprintf("/couples/%s/documents/%s/download-url", tenant, documentID)
	if err := c.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}
