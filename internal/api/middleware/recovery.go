package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/cardbox/internal/api/shared"
)

// RecoveryMiddleware catches panics escaping from handlers, logs the value
// and stack internally, and answers with a generic JSON 500 body. Internal
// detail never reaches the client.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					// net/http uses this sentinel to abort the connection;
					// rethrow so it keeps working.
					panic(rec)
				}

				slog.Error("panic recovered in handler",
					slog.Any("panic", rec),
					slog.String("trace_id", shared.GetTraceID(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())))

				shared.RespondWithError(w, r, http.StatusInternalServerError,
					"Internal server error", "An unexpected error occurred")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
