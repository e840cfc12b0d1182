package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	app := newTestApplication(t, testConfig())

	rr := httptest.NewRecorder()
	err := app.writeJSON(rr, http.StatusAccepted, envelope{"a": 1, "b": []string{"x"}},
		http.Header{"X-Custom": []string{"yes"}})
	require.NoError(t, err)

	require.Equal(t, http.StatusAccepted, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.Equal(t, "yes", rr.Header().Get("X-Custom"))
	require.True(t, json.Valid(rr.Body.Bytes()), rr.Body.String())

	var got map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.EqualValues(t, 1, got["a"])
	require.Equal(t, []any{"x"}, got["b"])
}

func TestReadJSON(t *testing.T) {
	t.Parallel()
	app := newTestApplication(t, testConfig())

	read := func(body string) (map[string]any, error) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		var dst map[string]any
		err := app.readJSON(httptest.NewRecorder(), req, &dst)
		return dst, err
	}

	dst, err := read("{\"title\":\"T\"}\n\t ")
	require.NoError(t, err)
	require.Equal(t, "T", dst["title"])

	_, err = read("  \n")
	require.ErrorIs(t, err, errEmptyBody)

	for _, body := range []string{`{"title":`, `{"title":"T"`, `{"title" "T"}`} {
		_, err = read(body)
		require.ErrorContains(t, err, "badly-formed JSON", body)
	}

	for _, body := range []string{`{"title":"T"}]`, `{"title":"T"}}`, `{"title":"T"} {"title":"U"}`, `{} 1`} {
		_, err = read(body)
		require.EqualError(t, err, "body must only contain a single JSON value", body)
	}

	_, err = read(`{"title":"` + strings.Repeat("a", maxBodyBytes) + `"}`)
	require.EqualError(t, err, "body must not be larger than 1048576 bytes")
}
