package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/cardbox/internal/api/middleware"
	"github.com/phrazzld/cardbox/internal/api/shared"
)

// NewRouter creates and configures the application router with all routes
// and middleware. Unmatched routes and unmatched methods both fall through
// to the JSON 404 catch-all.
func NewRouter(handler *CardHandler, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.TraceMiddleware)
	r.Use(middleware.RecoveryMiddleware)

	// Register routes
	r.Route("/cards", func(r chi.Router) {
		r.Get("/", handler.ListCards)
		r.Post("/", handler.CreateCard)

		// Static /suit and /value prefixes take precedence over {id},
		// so "/cards/suit/hearts" never parses "suit" as an id.
		r.Get("/suit/{suit}", handler.ListCardsBySuit)
		r.Get("/value/{value}", handler.ListCardsByValue)

		r.Get("/{id}", handler.GetCard)
		r.Put("/{id}", handler.UpdateCard)
		r.Delete("/{id}", handler.DeleteCard)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error("Failed to write health check response", "error", err)
		}
	})

	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	return r
}

// routeNotFound is the catch-all for unmatched routes and methods.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound,
		"Not found", fmt.Sprintf("Route %s %s not found", r.Method, r.URL.Path))
}
