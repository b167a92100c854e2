package httpapi

import (
	"net/http"

	"github.com/aislekit/aislekit/internal/common"
	"github.com/go-chi/chi/v5"
)

type presignedUploadResponse struct {
	URL        string `json:"url"`
	StorageKey string `json:"storage_key"`
}

type presignedDownloadResponse struct {
	URL string `json:"url"`
}

// handleDocumentUploadURL mints a storage key for the document and returns a
// presigned PUT URL. The client records the key on the document row after
// uploading.
func (s *Server) handleDocumentUploadURL(w http.ResponseWriter, r *http.Request) {
	url, key, err := s.presigner.PresignUpload(r.Context(), coupleIDFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, presignedUploadResponse{URL: url, StorageKey: key})
}

// handleDocumentDownloadURL looks up the document's storage key and returns
// a presigned GET URL for it.
func (s *Server) handleDocumentDownloadURL(w http.ResponseWriter, r *http.Request) {
	doc, err := s.documents.Get(r.Context(), coupleIDFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if doc.StorageKey == "" {
		s.writeError(w, r, common.ErrNotFound)
		return
	}

	url, err := s.presigner.PresignDownload(r.Context(), doc.StorageKey)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, presignedDownloadResponse{URL: url})
}
