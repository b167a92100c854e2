package models

// Document is the metadata row for an uploaded file; the payload lives in
// object storage under StorageKey and moves through presigned URLs only.
type Document struct {
	ID          string `json:"id"`
	CoupleID    string `json:"couple_id"`
	Name        string `json:"name" validate:"required"`
	ContentType string `json:"content_type,omitempty"`
	SizeBytes   int64  `json:"size_bytes" validate:"gte=0"`
	StorageKey  string `json:"storage_key,omitempty"`
	VendorID    string `json:"vendor_id,omitempty"`
	Timestamps
}

func (d Document) EntityID() string { return d.ID }
