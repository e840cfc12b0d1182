package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aoideee/book-library-api/internal/auth"
)

func TestLogin(t *testing.T) {
	t.Parallel()
	h := newTestApplication(t, testConfig()).routes()

	res := do(t, h, http.MethodPost, "/auth/login", `{"username":"admin","password":"test123"}`, "")
	require.Equal(t, http.StatusOK, res.status)
	require.Equal(t, "Login successful", res.body["message"])
	require.NotEmpty(t, res.body["token"])
	require.Equal(t, "24h", res.body["expiresIn"])
	require.Equal(t, map[string]any{"username": "admin", "role": "admin"}, res.body["user"])

	res = do(t, h, http.MethodPost, "/auth/login", `{"username":"admin","password":"wrong"}`, "")
	require.Equal(t, http.StatusUnauthorized, res.status)
	require.Equal(t, "Unauthorized", res.body["error"])
	require.Equal(t, "Invalid username or password", res.body["message"])

	// unknown users get the same answer as wrong passwords
	unknown := do(t, h, http.MethodPost, "/auth/login", `{"username":"root","password":"test123"}`, "")
	require.Equal(t, res.status, unknown.status)
	require.Equal(t, res.body, unknown.body)
}

func TestLogin_MissingFields(t *testing.T) {
	t.Parallel()
	h := newTestApplication(t, testConfig()).routes()

	for _, body := range []string{
		`{}`,
		`{"username":"admin"}`,
		`{"password":"test123"}`,
		`{"username":"","password":"test123"}`,
	} {
		res := do(t, h, http.MethodPost, "/auth/login", body, "")
		require.Equal(t, http.StatusBadRequest, res.status, body)
		require.Equal(t, "Username and password are required", res.body["message"], body)
	}

	res := do(t, h, http.MethodPost, "/auth/login", "", "")
	require.Equal(t, http.StatusBadRequest, res.status)
	require.Equal(t, "body must not be empty", res.body["message"])
}

func TestIssuedTokenUnlocksWrites(t *testing.T) {
	t.Parallel()
	h := newTestApplication(t, testConfig()).routes()

	token := login(t, h)

	res := do(t, h, http.MethodDelete, "/books/1", "", token)
	require.Equal(t, http.StatusOK, res.status)
}

func TestRequireAuthenticatedUser_RejectsForeignAndExpiredTokens(t *testing.T) {
	t.Parallel()
	h := newTestApplication(t, testConfig()).routes()

	foreign, err := auth.NewTokenService(auth.DefaultCredentials(), []byte("another-secret"), auth.DefaultTTL).
		Issue("admin", "test123")
	require.NoError(t, err)

	res := do(t, h, http.MethodDelete, "/books/1", "", foreign.Value)
	require.Equal(t, http.StatusUnauthorized, res.status)
	require.Equal(t, "Invalid or expired token", res.body["error"])
	require.Equal(t, "invalid token: invalid signature", res.body["message"])

	past := func() time.Time { return time.Now().Add(-48 * time.Hour) }
	expired, err := auth.NewTokenService(auth.DefaultCredentials(), []byte(testSecret), auth.DefaultTTL, auth.WithClock(past)).
		Issue("admin", "test123")
	require.NoError(t, err)

	res = do(t, h, http.MethodDelete, "/books/1", "", expired.Value)
	require.Equal(t, http.StatusUnauthorized, res.status)
	require.Equal(t, "invalid token: token expired", res.body["message"])
}

func TestRequireAuthenticatedUser_SetsContextUser(t *testing.T) {
	t.Parallel()
	app := newTestApplication(t, testConfig())

	tok, err := app.tokens.Issue("admin", "test123")
	require.NoError(t, err)

	var got auth.User
	h := app.requireAuthenticatedUser(func(w http.ResponseWriter, r *http.Request) {
		got = app.contextGetUser(r)
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/books", nil)
	req.Header.Set("Authorization", "bearer "+tok.Value)
	rr := httptest.NewRecorder()
	h(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Equal(t, auth.User{Username: "admin", Role: "admin"}, got)
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   string
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "Basic abc", want: ""},
		{header: "Bearer", want: ""},
		{header: "abc", want: ""},
		{header: "", want: ""},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		require.Equal(t, tc.want, bearerToken(req), "header %q", tc.header)
	}
}

func TestFormatTTL(t *testing.T) {
	t.Parallel()

	require.Equal(t, "24h", formatTTL(24*time.Hour))
	require.Equal(t, "90m", formatTTL(90*time.Minute))
	require.Equal(t, "1m30s", formatTTL(90*time.Second))
}
