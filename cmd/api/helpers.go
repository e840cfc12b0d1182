// cmd/api/helpers.go
// This file contains general-purpose helper functions for the application.
// Error-response helpers live in errors.go; only non-error utilities are here.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
)

// json is a drop-in replacement for encoding/json used for every request and
// response body.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxBodyBytes caps request bodies at 1 MB.
const maxBodyBytes = 1_048_576

// envelope is the top-level JSON wrapper type used for all API responses.
// Success bodies carry "success" and "data"; error bodies carry "error" and "message".
type envelope map[string]any

// readIDParam extracts the ":id" URL parameter added by httprouter.
// Book ids are opaque strings, so no numeric parsing happens here.
func (app *applicationDependencies) readIDParam(r *http.Request) string {
	params := httprouter.ParamsFromContext(r.Context())
	return params.ByName("id")
}

// writeJSON marshals data to indented JSON, applies any custom headers,
// sets Content-Type to "application/json", writes the status code, and
// streams the body to the client. json-iterator only indents with spaces.
func (app *applicationDependencies) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

// errEmptyBody is returned by readJSON when the body holds only whitespace.
var errEmptyBody = errors.New("body must not be empty")

// readJSON decodes a single JSON value from the request body into dst.
// It enforces a 1 MB size limit and ensures the body contains exactly one
// JSON value; trailing whitespace is allowed. Unknown fields are ignored so
// clients may echo whole records (including "id") back to the server.
func (app *applicationDependencies) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		}
		return fmt.Errorf("read body: %w", err)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return errEmptyBody
	}

	// Unmarshal accepts a truncated document, so the first value is
	// checked for well-formedness on its own.
	if !json.Valid(body) {
		return errors.New("body contains badly-formed JSON")
	}

	err = json.Unmarshal(body, dst)
	if err != nil {
		if strings.Contains(err.Error(), "bytes left after unmarshal") {
			return errors.New("body must only contain a single JSON value")
		}
		return fmt.Errorf("body contains incorrect JSON: %w", err)
	}

	return nil
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func bearerToken(r *http.Request) string {
	v := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(v) < 7 || !strings.EqualFold(v[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(v[7:])
}

// formatTTL renders a duration the way clients expect it in "expiresIn",
// e.g. "24h" rather than "24h0m0s".
func formatTTL(d time.Duration) string {
	switch {
	case d%time.Hour == 0:
		return fmt.Sprintf("%dh", d/time.Hour)
	case d%time.Minute == 0:
		return fmt.Sprintf("%dm", d/time.Minute)
	default:
		return d.String()
	}
}

// nonEmpty reports whether s points at a non-empty string.
func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}
