package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogOutput(f func()) string {
	var buf bytes.Buffer
	old := defaultLogger
	defaultLogger = New(&buf, slog.LevelDebug, FormatJSON)
	defer func() { defaultLogger = old }()
	f()
	return buf.String()
}

func TestParseLevelAndFormat(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)

	format, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, format)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, FormatJSON)
	ctx := WithRequestID(WithLogger(context.Background(), logger), "abc")

	FromContext(ctx).Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "abc", entry["request_id"])
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	out := captureLogOutput(func() {
		FromContext(context.Background()).Debug("fallback")
	})
	assert.Contains(t, out, `"msg":"fallback"`)
}

func TestMiddleware(t *testing.T) {
	var seen string
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	out := captureLogOutput(func() {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Contains(t, out, `"status_code":418`)
	assert.Contains(t, out, seen)
}

func TestMiddlewareKeepsIncomingRequestID(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "given")
	w := httptest.NewRecorder()

	captureLogOutput(func() { handler.ServeHTTP(w, req) })

	assert.Equal(t, "given", w.Header().Get(RequestIDHeader))
}
