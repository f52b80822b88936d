package interfaces

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sebuszqo/FinTrack/internal/auth"
	"github.com/stretchr/testify/require"
)

const testUserID = "5b0a5a5e-3c1f-4a47-9c55-1f6f0b6f7e2a"

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

// serve routes a request through a mux so path values are populated, with the test user
// already authenticated.
func serve(pattern string, handler http.HandlerFunc, method, target string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			reader = bytes.NewBufferString(raw)
		} else {
			encoded, _ := json.Marshal(body)
			reader = bytes.NewBuffer(encoded)
		}
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(auth.ContextWithUserID(req.Context(), testUserID))

	mux := http.NewServeMux()
	mux.HandleFunc(pattern, handler)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	return response
}

func unauthenticated(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil).WithContext(context.Background())
}
