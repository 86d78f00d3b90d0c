package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/cardbox/internal/config"
	"github.com/phrazzld/cardbox/internal/platform/memory"
	"github.com/phrazzld/cardbox/internal/store"
)

// application holds all the dependencies and services of the server.
// These are assembled once at startup and shared for the process lifetime.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	cardStore store.CardStore
}

// newApplication creates a new application instance with all dependencies
// initialized. The card store is seeded with the standard startup deck;
// its contents live exactly as long as the process.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	cardStore := memory.NewMemoryCardStore(memory.SeedCards(), logger)
	logger.Info("card store initialized", "seed_cards", 3)

	return &application{
		config:    cfg,
		logger:    logger,
		cardStore: cardStore,
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	// Set up router using the application dependencies
	router := app.setupRouter()

	// Start the HTTP server
	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup runs after the server has drained. The card collection lives only
// in memory, so teardown is just accounting: record what is being discarded.
func (app *application) cleanup() {
	if cards, err := app.cardStore.List(context.Background()); err == nil {
		app.logger.Info("card store discarded", "cards", len(cards))
	}
	app.logger.Info("cardbox shutdown complete")
}
