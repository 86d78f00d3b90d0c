package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/cardbox/internal/api/middleware"
	"github.com/phrazzld/cardbox/internal/api/shared"
	"github.com/phrazzld/cardbox/internal/platform/logger"
)

func TestTraceMiddlewareSetsTraceID(t *testing.T) {
	var captured string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = shared.GetTraceID(r.Context())
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cards", nil)

	middleware.TraceMiddleware(inner).ServeHTTP(rec, req)

	require.NotEmpty(t, captured, "handler should see a trace ID in its context")
	_, err := uuid.Parse(captured)
	assert.NoError(t, err, "trace ID should be a UUID")
}

func TestTraceMiddlewareStoresScopedLogger(t *testing.T) {
	var inContext *slog.Logger
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inContext = logger.FromContext(r.Context())
	})

	middleware.TraceMiddleware(inner).ServeHTTP(
		httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/cards", nil))

	require.NotNil(t, inContext, "middleware should store a request-scoped logger")
	assert.NotEqual(t, slog.Default(), inContext,
		"the context logger carries the trace_id, so it cannot be the bare default")
}

func TestTraceMiddlewareUniquePerRequest(t *testing.T) {
	seen := make(map[string]bool)
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[shared.GetTraceID(r.Context())] = true
	})

	handler := middleware.TraceMiddleware(inner)
	for i := 0; i < 5; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/cards", nil))
	}

	assert.Len(t, seen, 5, "each request gets its own trace ID")
}
