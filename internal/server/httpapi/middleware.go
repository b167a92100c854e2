package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/aislekit/aislekit/internal/common"
	"github.com/aislekit/aislekit/internal/server/auth"
	"github.com/go-chi/chi/v5"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	contextKeyUserID   contextKey = "user_id"
	contextKeyCoupleID contextKey = "couple_id"
)

// requireAuth validates the bearer access token and attaches the user and
// couple identity to the request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(common.AuthorizationHeaderName)
		if authHeader == "" {
			s.writeError(w, r, common.ErrUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			s.writeError(w, r, common.ErrUnauthorized)
			return
		}

		claims, err := auth.ParseToken(parts[1], s.secret)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, contextKeyCoupleID, claims.CoupleID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireCouple rejects requests whose path couple differs from the token's
// couple. Every data route fails closed here before any query runs.
func (s *Server) requireCouple(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "coupleID") != coupleIDFrom(r.Context()) {
			s.writeJSON(w, http.StatusForbidden, errorBody{Error: "couple mismatch"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// coupleIDFrom extracts the authenticated couple id from the context.
// Returns empty string if the request is unauthenticated.
func coupleIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(contextKeyCoupleID).(string); ok {
		return id
	}
	return ""
}
