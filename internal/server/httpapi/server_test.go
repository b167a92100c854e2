package httpapi

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/aislekit/aislekit/internal/common"
	"github.com/aislekit/aislekit/internal/dbx"
	"github.com/aislekit/aislekit/internal/logging"
	"github.com/aislekit/aislekit/internal/server/auth"
	"github.com/aislekit/aislekit/internal/server/models"
	"github.com/aislekit/aislekit/internal/server/repositories/budgetcategories"
	"github.com/aislekit/aislekit/internal/server/repositories/couples"
	"github.com/aislekit/aislekit/internal/server/repositories/documents"
	"github.com/aislekit/aislekit/internal/server/repositories/expenses"
	"github.com/aislekit/aislekit/internal/server/repositories/guests"
	"github.com/aislekit/aislekit/internal/server/repositories/milestones"
	"github.com/aislekit/aislekit/internal/server/repositories/notes"
	"github.com/aislekit/aislekit/internal/server/repositories/refreshtokens"
	"github.com/aislekit/aislekit/internal/server/repositories/tasks"
	"github.com/aislekit/aislekit/internal/server/repositories/users"
	"github.com/aislekit/aislekit/internal/server/repositories/vendors"
	"github.com/aislekit/aislekit/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

// memRepo is an in-memory stand-in for one family's postgres repository.
type memRepo[E entity] struct {
	mu     sync.Mutex
	rows   map[string]E
	tenant func(E) string
}

func newMemRepo[E entity](tenant func(E) string) *memRepo[E] {
	return &memRepo[E]{rows: map[string]E{}, tenant: tenant}
}

func (m *memRepo[E]) ListByCouple(_ context.Context, coupleID string) ([]E, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []E{}
	for _, e := range m.rows {
		if m.tenant(e) == coupleID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memRepo[E]) Get(_ context.Context, coupleID, id string) (*E, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rows[id]
	if !ok || m.tenant(e) != coupleID {
		return nil, common.ErrNotFound
	}
	return &e, nil
}

func (m *memRepo[E]) Create(_ context.Context, e *E) (*E, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[(*e).EntityID()] = *e
	return e, nil
}

func (m *memRepo[E]) Update(_ context.Context, e *E) (*E, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := (*e).EntityID()
	old, ok := m.rows[id]
	if !ok || m.tenant(old) != m.tenant(*e) {
		return nil, common.ErrNotFound
	}
	m.rows[id] = *e
	return e, nil
}

func (m *memRepo[E]) Delete(_ context.Context, coupleID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.rows[id]; ok && m.tenant(e) == coupleID {
		delete(m.rows, id)
	}
	return nil
}

// fakeManager vends the in-memory repositories, ignoring the DB handle.
type fakeManager struct {
	guests    *memRepo[models.Guest]
	documents *memRepo[models.Document]
}

func newFakeManager() *fakeManager {
	return &fakeManager{
		guests:    newMemRepo(func(g models.Guest) string { return g.CoupleID }),
		documents: newMemRepo(func(d models.Document) string { return d.CoupleID }),
	}
}

func (f *fakeManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeManager) Users(dbx.DBTX) users.Repository              { return nil }
func (f *fakeManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository {
	return nil
}
func (f *fakeManager) Couples(dbx.DBTX) couples.Repository     { return nil }
func (f *fakeManager) Guests(dbx.DBTX) guests.Repository       { return f.guests }
func (f *fakeManager) Documents(dbx.DBTX) documents.Repository { return f.documents }
func (f *fakeManager) Tasks(dbx.DBTX) tasks.Repository {
	return newMemRepo(func(t models.Task) string { return t.CoupleID })
}
func (f *fakeManager) Vendors(dbx.DBTX) vendors.Repository {
	return newMemRepo(func(v models.Vendor) string { return v.CoupleID })
}
func (f *fakeManager) Notes(dbx.DBTX) notes.Repository {
	return newMemRepo(func(n models.Note) string { return n.CoupleID })
}
func (f *fakeManager) Milestones(dbx.DBTX) milestones.Repository {
	return newMemRepo(func(m models.Milestone) string { return m.CoupleID })
}
func (f *fakeManager) BudgetCategories(dbx.DBTX) budgetcategories.Repository {
	return newMemRepo(func(c models.BudgetCategory) string { return c.CoupleID })
}
func (f *fakeManager) Expenses(dbx.DBTX) expenses.Repository {
	return newMemRepo(func(e models.Expense) string { return e.CoupleID })
}

type fakeAuth struct {
	registerErr error
	loginErr    error
	refreshErr  error
	session     *services.Session
}

func (f *fakeAuth) Register(ctx context.Context, email, password, p1, p2 string) (*services.Session, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.session, nil
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*services.Session, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.session, nil
}

func (f *fakeAuth) Refresh(ctx context.Context, token string) (*services.Session, error) {
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	return f.session, nil
}

type fakePresigner struct {
	uploadErr error
}

func (f *fakePresigner) PresignUpload(ctx context.Context, coupleID, documentID string) (string, string, error) {
	if f.uploadErr != nil {
		return "", "", f.uploadErr
	}
	key := fmt.Sprintf("couples/%s/documents/%s/blob", coupleID, documentID)
	return "https://storage.test/put/" + key, key, nil
}

func (f *fakePresigner) PresignDownload(ctx context.Context, key string) (string, error) {
	return "https://storage.test/get/" + key, nil
}

func newTestServer(t *testing.T, fm *fakeManager, fa *fakeAuth) *Server {
	t.Helper()
	return NewServer(nil, fm, fa, &fakePresigner{}, testSecret, logging.Nop())
}

func doRequest(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func tokenFor(t *testing.T, coupleID string) string {
	t.Helper()
	tok, err := auth.GenerateToken("user-1", coupleID, testSecret, time.Hour)
	require.NoError(t, err)
	return tok
}

func TestAuthEndpoints(t *testing.T) {
	session := &services.Session{AccessToken: "at", RefreshToken: "rt", CoupleID: "c1"}

	t.Run("register returns session", func(t *testing.T) {
		s := newTestServer(t, newFakeManager(), &fakeAuth{session: session})
		rec := doRequest(t, s, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"email": "a@b.test", "password": "longenough", "partner1_name": "Ada", "partner2_name": "Grace",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)

		var got map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "at", got["access_token"])
		assert.Equal(t, "rt", got["refresh_token"])
		assert.Equal(t, "c1", got["couple_id"])
	})

	t.Run("register rejects short password", func(t *testing.T) {
		s := newTestServer(t, newFakeManager(), &fakeAuth{session: session})
		rec := doRequest(t, s, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"email": "a@b.test", "password": "short", "partner1_name": "Ada", "partner2_name": "Grace",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("login maps bad credentials to 401", func(t *testing.T) {
		s := newTestServer(t, newFakeManager(), &fakeAuth{loginErr: common.ErrUnauthorized})
		rec := doRequest(t, s, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"email": "a@b.test", "password": "wrongpass",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var got map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "unauthorized", got["error"])
	})

	t.Run("refresh maps expired token to 401", func(t *testing.T) {
		s := newTestServer(t, newFakeManager(), &fakeAuth{refreshErr: common.ErrRefreshTokenExpired})
		rec := doRequest(t, s, http.MethodPost, "/api/v1/auth/refresh", "", map[string]string{
			"refresh_token": "stale",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAuth(t *testing.T) {
	s := newTestServer(t, newFakeManager(), &fakeAuth{})

	t.Run("missing header", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/couples/c1/guests", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/couples/c1/guests", nil)
		req.Header.Set("Authorization", "Basic abc")
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		tok, err := auth.GenerateToken("u1", "c1", testSecret, -time.Minute)
		require.NoError(t, err)
		rec := doRequest(t, s, http.MethodGet, "/api/v1/couples/c1/guests", tok, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token for another couple", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/couples/c1/guests", tokenFor(t, "c2"), nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestGuestCRUD(t *testing.T) {
	fm := newFakeManager()
	s := newTestServer(t, fm, &fakeAuth{})
	tok := tokenFor(t, "c1")

	t.Run("create keeps well-formed client id", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/v1/couples/c1/guests", tok, map[string]any{
			"id": "3f0d9a1c-9f7d-4a77-8d0e-1f2b3c4d5e6f", "name": "Ada", "rsvp_status": "pending",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var g models.Guest
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
		assert.Equal(t, "3f0d9a1c-9f7d-4a77-8d0e-1f2b3c4d5e6f", g.ID)
		assert.Equal(t, "c1", g.CoupleID)
	})

	t.Run("create mints id when body id is not a uuid", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/v1/couples/c1/guests", tok, map[string]any{
			"id": "provisional", "name": "Grace", "rsvp_status": "confirmed",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var g models.Guest
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
		assert.NotEqual(t, "provisional", g.ID)
		assert.NotEmpty(t, g.ID)
	})

	t.Run("create rejects missing name", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/v1/couples/c1/guests", tok, map[string]any{
			"rsvp_status": "pending",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("list is tenant scoped", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/couples/c1/guests", tok, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var items []models.Guest
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		assert.Len(t, items, 2)
	})

	t.Run("update existing row", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPut, "/api/v1/couples/c1/guests/3f0d9a1c-9f7d-4a77-8d0e-1f2b3c4d5e6f", tok, map[string]any{
			"name": "Ada Lovelace", "rsvp_status": "confirmed", "plus_ones": 1,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var g models.Guest
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
		assert.Equal(t, "Ada Lovelace", g.Name)
		assert.Equal(t, 1, g.PlusOnes)
	})

	t.Run("update missing row is 404", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPut, "/api/v1/couples/c1/guests/00000000-0000-0000-0000-000000000000", tok, map[string]any{
			"name": "Nobody", "rsvp_status": "pending",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		path := "/api/v1/couples/c1/guests/3f0d9a1c-9f7d-4a77-8d0e-1f2b3c4d5e6f"
		rec := doRequest(t, s, http.MethodDelete, path, tok, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = doRequest(t, s, http.MethodDelete, path, tok, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestDocumentPresign(t *testing.T) {
	fm := newFakeManager()
	s := newTestServer(t, fm, &fakeAuth{})
	tok := tokenFor(t, "c1")

	t.Run("upload url returns key", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/v1/couples/c1/documents/doc-1/upload-url", tok, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Contains(t, got["url"], "https://storage.test/put/")
		assert.Equal(t, "couples/c1/documents/doc-1/blob", got["storage_key"])
	})

	t.Run("download url uses stored key", func(t *testing.T) {
		_, err := fm.documents.Create(context.Background(), &models.Document{
			ID: "d1", CoupleID: "c1", Name: "contract.pdf", StorageKey: "couples/c1/documents/d1/blob",
		})
		require.NoError(t, err)

		rec := doRequest(t, s, http.MethodGet, "/api/v1/couples/c1/documents/d1/download-url", tok, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "https://storage.test/get/couples/c1/documents/d1/blob", got["url"])
	})

	t.Run("download url for missing payload is 404", func(t *testing.T) {
		_, err := fm.documents.Create(context.Background(), &models.Document{
			ID: "d2", CoupleID: "c1", Name: "pending.pdf",
		})
		require.NoError(t, err)

		rec := doRequest(t, s, http.MethodGet, "/api/v1/couples/c1/documents/d2/download-url", tok, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
