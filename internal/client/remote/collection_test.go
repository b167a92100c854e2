package remote

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aislekit/aislekit/internal/client/api"
	"github.com/aislekit/aislekit/internal/client/models"
	"github.com/aislekit/aislekit/internal/common"
	"github.com/aislekit/aislekit/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tenantA = models.TenantID("couple-a")
	tenantB = models.TenantID("couple-b")
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newClient(baseURL string) *api.Client {
	return api.New(api.Config{
		BaseURL:        baseURL,
		Timeout:        2 * time.Second,
		RetryAttempts:  2,
		RetryBaseDelay: time.Millisecond,
	}, testLogger())
}

// backend is a minimal guests endpoint that counts list hits per couple.
type backend struct {
	listCalls atomic.Int64
	guests    map[string][]models.Guest
}

func (b *backend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.TrimPrefix(r.URL.Path, common.APIBasePath+"/couples/"), "/")
		couple := parts[0]

		switch r.Method {
		case http.MethodGet:
			b.listCalls.Add(1)
			_ = json.NewEncoder(w).Encode(b.guests[couple])
		case http.MethodPost:
			var g models.Guest
			_ = json.NewDecoder(r.Body).Decode(&g)
			g.ID = "server-" + g.Name
			b.guests[couple] = append(b.guests[couple], g)
			_ = json.NewEncoder(w).Encode(g)
		case http.MethodPut:
			var g models.Guest
			_ = json.NewDecoder(r.Body).Decode(&g)
			_ = json.NewEncoder(w).Encode(g)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})
}

func newGuestCollection(t *testing.T, b *backend) (*Collection[models.Guest], *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	return NewCollection[models.Guest](newClient(srv.URL), "guests", time.Hour), srv
}

func TestFetchAll_ServesFromCacheWithinTTL(t *testing.T) {
	b := &backend{guests: map[string][]models.Guest{
		string(tenantA): {{ID: "g1", Name: "Ann"}},
	}}
	col, _ := newGuestCollection(t, b)
	ctx := context.Background()

	first, err := col.FetchAll(ctx, tenantA)
	require.NoError(t, err)
	second, err := col.FetchAll(ctx, tenantA)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, b.listCalls.Load(), "second fetch within TTL must not hit the server")
}

func TestFetchAll_InvalidateCacheForcesRemoteRead(t *testing.T) {
	b := &backend{guests: map[string][]models.Guest{string(tenantA): {{ID: "g1"}}}}
	col, _ := newGuestCollection(t, b)
	ctx := context.Background()

	_, err := col.FetchAll(ctx, tenantA)
	require.NoError(t, err)
	col.InvalidateCache(tenantA)
	_, err = col.FetchAll(ctx, tenantA)
	require.NoError(t, err)

	assert.EqualValues(t, 2, b.listCalls.Load())
}

func TestMutations_InvalidateCache(t *testing.T) {
	b := &backend{guests: map[string][]models.Guest{string(tenantA): {{ID: "g1", Name: "Ann"}}}}
	col, _ := newGuestCollection(t, b)
	ctx := context.Background()

	_, err := col.FetchAll(ctx, tenantA)
	require.NoError(t, err)

	_, err = col.Create(ctx, tenantA, models.Guest{ID: "prov", Name: "Ben"})
	require.NoError(t, err)

	_, err = col.FetchAll(ctx, tenantA)
	require.NoError(t, err)
	assert.EqualValues(t, 2, b.listCalls.Load(), "create must invalidate the cached collection")
}

func TestFetchAll_TenantCachesAreIndependent(t *testing.T) {
	b := &backend{guests: map[string][]models.Guest{
		string(tenantA): {{ID: "a1", CoupleID: string(tenantA)}},
		string(tenantB): {{ID: "b1", CoupleID: string(tenantB)}},
	}}
	col, _ := newGuestCollection(t, b)
	ctx := context.Background()

	gotA, err := col.FetchAll(ctx, tenantA)
	require.NoError(t, err)
	gotB, err := col.FetchAll(ctx, tenantB)
	require.NoError(t, err)

	require.Len(t, gotA, 1)
	require.Len(t, gotB, 1)
	assert.Equal(t, "a1", gotA[0].ID)
	assert.Equal(t, "b1", gotB[0].ID, "a fresh cache entry for one couple must never serve another")
}

func TestMissingTenant_FailsClosedWithoutNetwork(t *testing.T) {
	b := &backend{guests: map[string][]models.Guest{}}
	col, _ := newGuestCollection(t, b)
	ctx := context.Background()

	_, err := col.FetchAll(ctx, "")
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = col.Create(ctx, "", models.Guest{ID: "x"})
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = col.Update(ctx, "", models.Guest{ID: "x"})
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	err = col.Delete(ctx, "", "x")
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	assert.EqualValues(t, 0, b.listCalls.Load())
}

func TestDelete_NotFoundCountsAsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"no such row"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	col := NewCollection[models.Guest](newClient(srv.URL), "guests", time.Hour)
	err := col.Delete(context.Background(), tenantA, "already-gone")
	assert.NoError(t, err)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "not found", status: http.StatusNotFound, want: common.ErrNotFound},
		{name: "unauthorized", status: http.StatusUnauthorized, want: common.ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, want: common.ErrUnauthorized},
		{name: "validation", status: http.StatusUnprocessableEntity, want: common.ErrValidation},
		{name: "conflict", status: http.StatusConflict, want: common.ErrAlreadyExists},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":"nope"}`, tc.status)
			}))
			defer srv.Close()

			col := NewCollection[models.Guest](newClient(srv.URL), "guests", time.Hour)
			_, err := col.Update(context.Background(), tenantA, models.Guest{ID: "g1"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, common.ErrUpdateFailed)
		})
	}
}

func TestTransientFailure_IsRetriedThenSucceeds(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, `{"error":"temporarily down"}`, http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode([]models.Guest{{ID: "g1"}})
	}))
	defer srv.Close()

	col := NewCollection[models.Guest](newClient(srv.URL), "guests", time.Hour)
	got, err := col.FetchAll(context.Background(), tenantA)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.EqualValues(t, 2, calls.Load())
}

func TestBusinessError_IsNotRetried(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error":"bad payload"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	col := NewCollection[models.Guest](newClient(srv.URL), "guests", time.Hour)
	_, err := col.Create(context.Background(), tenantA, models.Guest{ID: "prov"})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.EqualValues(t, 1, calls.Load(), "validation failures must not be retried")
}
