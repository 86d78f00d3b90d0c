package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/cardbox/internal/api/shared"
	"github.com/phrazzld/cardbox/internal/platform/logger"
)

// TraceMiddleware tags each request with a trace ID and stores a
// trace-scoped logger in the context. Handlers retrieve that logger via
// logger.FromContextOrDefault, so every log line for one request carries
// the same trace_id without threading it by hand. Apply this before any
// middleware or handler that logs.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.Default().With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
