package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hifz_keep/internal/config"
	"hifz_keep/internal/middleware"
	"hifz_keep/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRouter wires a chi router with the disabled-auth middleware, so tests
// authenticate with the X-User-ID header.
func testRouter(register func(r chi.Router)) *chi.Mux {
	cfg := &config.Config{Auth: config.AuthConfig{Enabled: false}}
	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuthMiddleware(cfg))
		register(r)
	})
	return router
}

// createRequest builds a request with an optional JSON body and an optional
// X-User-ID header.
func createRequest(t *testing.T, method, path string, body interface{}, userID *uuid.UUID) *http.Request {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			bodyReader = strings.NewReader(raw)
		} else {
			payload, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			bodyReader = bytes.NewBuffer(payload)
		}
	}

	req := httptest.NewRequest(method, path, bodyReader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	return req
}

// assertErrorCode checks the machine-readable code of an error response.
func assertErrorCode(t *testing.T, body []byte, wantCode string) {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp), "Error response is not valid JSON: %s", string(body))
	assert.Equal(t, wantCode, resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Message)
}
