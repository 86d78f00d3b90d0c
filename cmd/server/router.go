package main

import (
	"net/http"

	"github.com/phrazzld/cardbox/internal/api"
)

// setupRouter creates the application router with all routes and middleware.
// Handler construction lives here so the route table in internal/api can be
// exercised directly by tests against any CardStore.
func (app *application) setupRouter() http.Handler {
	cardHandler := api.NewCardHandler(app.cardStore, app.logger)
	return api.NewRouter(cardHandler, app.logger)
}
