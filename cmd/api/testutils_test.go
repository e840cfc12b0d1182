package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/aoideee/book-library-api/internal/auth"
	"github.com/aoideee/book-library-api/internal/data"
)

const testSecret = "test-secret"

func testConfig() serverConfig {
	var cfg serverConfig
	cfg.port = 3000
	cfg.environment = envDevelopment
	cfg.jwt.secret = testSecret
	cfg.jwt.ttl = auth.DefaultTTL
	cfg.cors.trustedOrigins = []string{"*"}
	return cfg
}

func newTestApplication(t *testing.T, cfg serverConfig) *applicationDependencies {
	t.Helper()
	app := &applicationDependencies{
		config:    cfg,
		logger:    zaptest.NewLogger(t),
		models:    data.NewModels(data.SeedBooks()),
		tokens:    auth.NewTokenService(auth.DefaultCredentials(), []byte(cfg.jwt.secret), cfg.jwt.ttl),
		startedAt: time.Now(),
		quit:      make(chan struct{}),
	}
	t.Cleanup(app.stop)
	return app
}

type testResponse struct {
	status int
	header http.Header
	body   map[string]any
}

// do sends a request through the full middleware chain. token is sent as a
// bearer token when non-empty.
func do(t *testing.T, h http.Handler, method, path, body, token string) testResponse {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	res := testResponse{status: rr.Code, header: rr.Header()}
	if rr.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res.body), rr.Body.String())
	}
	return res
}

func login(t *testing.T, h http.Handler) string {
	t.Helper()

	res := do(t, h, http.MethodPost, "/auth/login", `{"username":"admin","password":"test123"}`, "")
	require.Equal(t, http.StatusOK, res.status)
	token, _ := res.body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func bookData(t *testing.T, res testResponse) map[string]any {
	t.Helper()
	d, ok := res.body["data"].(map[string]any)
	require.True(t, ok, "data is not an object: %v", res.body)
	return d
}
