package main

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ayushyaa-be/internal/config"
	"ayushyaa-be/internal/kvstore"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRouter(t *testing.T) {
	blobDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(blobDir, "ashwagandha.jpg"), []byte("jpeg"), 0o644))

	apiRoutes := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	router := setupRouter(apiRoutes, blobDir, "/uploads")

	t.Run("Health Check", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "OK")
	})

	t.Run("Serves uploaded images", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/uploads/ashwagandha.jpg", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "jpeg", rr.Body.String())
	})

	t.Run("Falls through to the API", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/catalog", nil))

		assert.Equal(t, http.StatusTeapot, rr.Code)
	})

	t.Run("Remote blob base URL mounts no file server", func(t *testing.T) {
		remote := setupRouter(apiRoutes, blobDir, "https://cdn.example.com/uploads")
		rr := httptest.NewRecorder()
		remote.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/uploads/ashwagandha.jpg", nil))

		assert.Equal(t, http.StatusTeapot, rr.Code)
	})
}

func newTestStore(t *testing.T) kvstore.Store {
	t.Helper()
	s, err := kvstore.Open(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewServer(t *testing.T) {
	database, _, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	cfg := &config.Config{
		AppPort:       "8080",
		AppEnv:        "test",
		BlobDir:       t.TempDir(),
		BlobBaseURL:   "/uploads",
		AdminUsername: "admin",
		AdminPassword: "admin",
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t.Run("Wires the middleware chain", func(t *testing.T) {
		handler, err := newServer(ctx, cfg, database, newTestStore(t))
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		assert.NotEmpty(t, rr.Header().Get("X-Client-ID"))
		assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Anonymous session restore", func(t *testing.T) {
		handler, err := newServer(ctx, cfg, database, newTestStore(t))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("X-Client-ID", "client-1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"user":null}`, rr.Body.String())
	})

	t.Run("Admin routes need an admin token", func(t *testing.T) {
		handler, err := newServer(ctx, cfg, database, newTestStore(t))
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/admin/products", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Cookieless login flood is limited by IP", func(t *testing.T) {
		handler, err := newServer(ctx, cfg, database, newTestStore(t))
		require.NoError(t, err)

		codes := make([]int, 0, 6)
		for i := 0; i < 6; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@x.com","password":"guess"}`))
			req.Header.Set("Content-Type", "application/json")
			req.RemoteAddr = "203.0.113.7:5555"
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			codes = append(codes, rr.Code)
		}

		assert.Equal(t, http.StatusUnauthorized, codes[0])
		assert.Equal(t, http.StatusTooManyRequests, codes[5])
	})

	t.Run("Stale token cookie on public route", func(t *testing.T) {
		handler, err := newServer(ctx, cfg, database, newTestStore(t))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("X-Client-ID", "client-2")
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "expired"})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"user":null}`, rr.Body.String())
	})

	t.Run("Missing admin credential", func(t *testing.T) {
		bad := *cfg
		bad.AdminPassword = ""

		_, err := newServer(ctx, &bad, database, newTestStore(t))
		assert.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	origInitDB := initDBFunc
	defer func() { initDBFunc = origInitDB }()
	initDBFunc = func(cfg *config.Config) *sql.DB {
		database, _, _ := sqlmock.New()
		return database
	}

	origStartServer := startServerFunc
	defer func() { startServerFunc = origStartServer }()
	var addr string
	startServerFunc = func(srv *http.Server) error {
		addr = srv.Addr
		return nil
	}

	dir := t.TempDir()
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASSWORD", "pass")
	t.Setenv("DB_NAME", "db")
	t.Setenv("LOCAL_STORE_PATH", filepath.Join(dir, "store.db"))
	t.Setenv("BLOB_DIR", filepath.Join(dir, "uploads"))

	assert.NoError(t, run())
	assert.Equal(t, ":8080", addr)
}
