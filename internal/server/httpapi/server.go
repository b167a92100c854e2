// Package httpapi exposes the planner backend over HTTP/JSON: bearer-token
// auth, per-couple CRUD for every entity family, and presigned URLs for
// document payloads.
package httpapi

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/aislekit/aislekit/internal/common"
	"github.com/aislekit/aislekit/internal/logging"
	"github.com/aislekit/aislekit/internal/server/models"
	"github.com/aislekit/aislekit/internal/server/repositories/documents"
	"github.com/aislekit/aislekit/internal/server/repositories/repomanager"
	"github.com/aislekit/aislekit/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// AuthService is what the auth endpoints need from the service layer.
type AuthService interface {
	Register(ctx context.Context, email, password, partner1, partner2 string) (*services.Session, error)
	Login(ctx context.Context, email, password string) (*services.Session, error)
	Refresh(ctx context.Context, refreshToken string) (*services.Session, error)
}

// Presigner issues presigned object-storage URLs for document payloads.
type Presigner interface {
	PresignUpload(ctx context.Context, coupleID, documentID string) (url, key string, err error)
	PresignDownload(ctx context.Context, key string) (string, error)
}

// Server holds dependencies for the HTTP handlers.
type Server struct {
	auth      AuthService
	presigner Presigner
	documents documents.Repository
	secret    []byte
	validate  *validator.Validate
	router    *chi.Mux
	logger    logging.Logger
}

// NewServer wires all routes against the given database handle.
func NewServer(db *sql.DB, rm repomanager.RepositoryManager, auth AuthService, presigner Presigner, secret []byte, logger logging.Logger) *Server {
	s := &Server{
		auth:      auth,
		presigner: presigner,
		documents: rm.Documents(db),
		secret:    secret,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		router:    chi.NewRouter(),
		logger:    logger,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	s.router.Route(common.APIBasePath, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)
			r.Post("/refresh", s.handleRefresh)
		})

		r.Route("/couples/{coupleID}", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Use(s.requireCouple)

			mountResource(r, s, "guests", rm.Guests(db), func(e *models.Guest, id, coupleID string) {
				e.ID, e.CoupleID = id, coupleID
			})
			mountResource(r, s, "tasks", rm.Tasks(db), func(e *models.Task, id, coupleID string) {
				e.ID, e.CoupleID = id, coupleID
			})
			mountResource(r, s, "vendors", rm.Vendors(db), func(e *models.Vendor, id, coupleID string) {
				e.ID, e.CoupleID = id, coupleID
			})
			mountResource(r, s, "notes", rm.Notes(db), func(e *models.Note, id, coupleID string) {
				e.ID, e.CoupleID = id, coupleID
			})
			mountResource(r, s, "milestones", rm.Milestones(db), func(e *models.Milestone, id, coupleID string) {
				e.ID, e.CoupleID = id, coupleID
			})
			mountResource(r, s, "budget-categories", rm.BudgetCategories(db), func(e *models.BudgetCategory, id, coupleID string) {
				e.ID, e.CoupleID = id, coupleID
			})
			mountResource(r, s, "expenses", rm.Expenses(db), func(e *models.Expense, id, coupleID string) {
				e.ID, e.CoupleID = id, coupleID
			})
			mountResource(r, s, "documents", rm.Documents(db), func(e *models.Document, id, coupleID string) {
				e.ID, e.CoupleID = id, coupleID
			}, func(r chi.Router) {
				r.Post("/{id}/upload-url", s.handleDocumentUploadURL)
				r.Get("/{id}/download-url", s.handleDocumentDownloadURL)
			})
		})
	})

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
