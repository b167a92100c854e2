package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aislekit/aislekit/internal/common"
	"github.com/aislekit/aislekit/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(baseURL string) *Client {
	return New(Config{
		BaseURL:        baseURL,
		Timeout:        2 * time.Second,
		RetryAttempts:  1,
		RetryBaseDelay: time.Millisecond,
	}, testLogger())
}

func TestLogin_InstallsTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, common.APIBasePath+"/auth/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(Session{
			AccessToken: "acc-1", RefreshToken: "ref-1", CoupleID: "couple-1",
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	s, err := c.Login(context.Background(), "a@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "couple-1", s.CoupleID)
	assert.Equal(t, "acc-1", c.currentTokens().access)
}

// A configured address with a trailing slash must not produce "//api/v1"
// request paths.
func TestNew_TrimsTrailingSlashFromBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, common.APIBasePath+"/data", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"ok": "yes"})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL + "/")
	var out map[string]string
	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/data", nil, &out))
	assert.Equal(t, "yes", out["ok"])
}

func TestDo_RefreshesSessionOn401(t *testing.T) {
	var refreshCalls, dataCalls atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc(common.APIBasePath+"/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		var req refreshRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		require.Equal(t, "ref-old", req.RefreshToken)
		_ = json.NewEncoder(w).Encode(Session{AccessToken: "acc-new", RefreshToken: "ref-new"})
	})
	mux.HandleFunc(common.APIBasePath+"/data", func(w http.ResponseWriter, r *http.Request) {
		dataCalls.Add(1)
		if r.Header.Get(common.AuthorizationHeaderName) != "Bearer acc-new" {
			http.Error(w, `{"error":"expired"}`, http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"ok": "yes"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv.URL)
	c.SetTokens("acc-old", "ref-old")

	var out map[string]string
	err := c.Do(context.Background(), http.MethodGet, "/data", nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "yes", out["ok"])
	assert.EqualValues(t, 1, refreshCalls.Load())
	assert.EqualValues(t, 2, dataCalls.Load())
	assert.Equal(t, "ref-new", c.currentTokens().refresh)
}

func TestDo_401WithoutRefreshTokenStaysUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"who are you"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	err := c.Do(context.Background(), http.MethodGet, "/data", nil, nil)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}
