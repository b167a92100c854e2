package models

// Document is the metadata row for an uploaded file. The payload itself
// lives in object storage and is transferred through presigned URLs.
type Document struct {
	ID          string `json:"id"`
	CoupleID    string `json:"couple_id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type,omitempty"`
	SizeBytes   int64  `json:"size_bytes"`
	StorageKey  string `json:"storage_key,omitempty"`
	VendorID    string `json:"vendor_id,omitempty"`
	Timestamps
}

func (d Document) EntityID() string { return d.ID }
