package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/cardbox/internal/api/shared"
	"github.com/phrazzld/cardbox/internal/domain"
	"github.com/phrazzld/cardbox/internal/platform/logger"
	"github.com/phrazzld/cardbox/internal/store"
)

// CardHandler handles card-related HTTP requests
type CardHandler struct {
	cardStore store.CardStore
	logger    *slog.Logger
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(cardStore store.CardStore, log *slog.Logger) *CardHandler {
	if cardStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("cardStore cannot be nil for CardHandler")
	}
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}

	return &CardHandler{
		cardStore: cardStore,
		logger:    log.With(slog.String("component", "card_handler")),
	}
}

// ListCards handles GET /cards requests
// It returns every card in the store as a JSON array.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	cards, err := h.cardStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Internal server error", "Failed to list cards", err)
		return
	}

	log.Debug("listed cards", slog.Int("count", len(cards)))
	shared.RespondWithJSON(w, r, http.StatusOK, cards)
}

// GetCard handles GET /cards/{id} requests
// It returns the card with the given id, or a 404 if no card has it.
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.cardID(w, r)
	if !ok {
		return
	}

	card, err := h.cardStore.GetByID(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, id, err)
		return
	}

	log.Debug("retrieved card", slog.Int("card_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, card)
}

// CreateCard handles POST /cards requests
// It validates the body against the suit and value enumerations before any
// mutation, then stores the card and returns it with its assigned id.
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, ok := h.cardRequest(w, r)
	if !ok {
		return
	}

	card, err := h.cardStore.Create(r.Context(), req.Suit, req.Value)
	if err != nil {
		h.respondStoreError(w, r, 0, err)
		return
	}

	log.Debug("created card",
		slog.Int("card_id", card.ID),
		slog.String("suit", card.Suit),
		slog.String("value", card.Value))
	shared.RespondWithJSON(w, r, http.StatusCreated, card)
}

// UpdateCard handles PUT /cards/{id} requests
// It fully replaces the card's suit and value; the id is preserved.
func (h *CardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.cardID(w, r)
	if !ok {
		return
	}

	req, ok := h.cardRequest(w, r)
	if !ok {
		return
	}

	card, err := h.cardStore.Update(r.Context(), id, req.Suit, req.Value)
	if err != nil {
		h.respondStoreError(w, r, id, err)
		return
	}

	log.Debug("updated card", slog.Int("card_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, card)
}

// DeleteCard handles DELETE /cards/{id} requests
// The removed card is echoed back with a confirmation message.
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.cardID(w, r)
	if !ok {
		return
	}

	card, err := h.cardStore.Delete(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, id, err)
		return
	}

	log.Debug("deleted card", slog.Int("card_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteCardResponse{
		Message: fmt.Sprintf("Card with ID %d removed", id),
		Card:    *card,
	})
}

// ListCardsBySuit handles GET /cards/suit/{suit} requests
// Matching is case-insensitive. An empty result is a 404 whose body carries
// only a message, no error key; that shape is part of the wire contract.
func (h *CardHandler) ListCardsBySuit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	suit := chi.URLParam(r, "suit")
	cards, err := h.cardStore.FilterBySuit(r.Context(), suit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Internal server error", "Failed to filter cards", err)
		return
	}

	if len(cards) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound,
			"", fmt.Sprintf("No cards found with suit %s", suit))
		return
	}

	log.Debug("filtered cards by suit",
		slog.String("suit", suit),
		slog.Int("count", len(cards)))
	shared.RespondWithJSON(w, r, http.StatusOK, cards)
}

// ListCardsByValue handles GET /cards/value/{value} requests
// Matching is case-insensitive; empty results behave as in ListCardsBySuit.
func (h *CardHandler) ListCardsByValue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	value := chi.URLParam(r, "value")
	cards, err := h.cardStore.FilterByValue(r.Context(), value)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Internal server error", "Failed to filter cards", err)
		return
	}

	if len(cards) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound,
			"", fmt.Sprintf("No cards found with value %s", value))
		return
	}

	log.Debug("filtered cards by value",
		slog.String("value", value),
		slog.Int("count", len(cards)))
	shared.RespondWithJSON(w, r, http.StatusOK, cards)
}

// cardID extracts and parses the {id} path parameter. On failure it writes
// the 400 response itself and returns ok=false.
func (h *CardHandler) cardID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.Atoi(raw)
	if err != nil {
		wrapped := fmt.Errorf("%w: %q", domain.ErrInvalidID, raw)
		label, message := ValidationErrorBody(wrapped)
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(wrapped), label, message, wrapped)
		return 0, false
	}

	return id, true
}

// cardRequest decodes and presence-checks the create/update body. On failure
// it writes the 400 response itself and returns ok=false. Enum validation
// happens in the store via the domain, so the exact spelling rules live in
// one place.
func (h *CardHandler) cardRequest(w http.ResponseWriter, r *http.Request) (CardRequest, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Invalid request body", "Request body must be valid JSON")
		return CardRequest{}, false
	}

	if err := shared.ValidateRequest(&req); err != nil {
		label, message := ValidationErrorBody(err)
		log.Warn("validation error", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, label, message, err)
		return CardRequest{}, false
	}

	return req, true
}

// respondStoreError translates a store error into the status and body the
// contract fixes for it. id is only used for not-found messages; pass 0 when
// the operation has no id (create).
func (h *CardHandler) respondStoreError(w http.ResponseWriter, r *http.Request, id int, err error) {
	status := MapErrorToStatusCode(err)

	switch status {
	case http.StatusNotFound:
		shared.RespondWithError(w, r, status,
			"Card not found", fmt.Sprintf("No card found with ID %d", id))

	case http.StatusBadRequest:
		label, message := ValidationErrorBody(err)
		shared.RespondWithErrorAndLog(w, r, status, label, message, err)

	default:
		shared.RespondWithErrorAndLog(w, r, status,
			"Internal server error", "An unexpected error occurred", err)
	}

	if status == http.StatusNotFound {
		log := logger.FromContextOrDefault(r.Context(), h.logger)
		log.Debug("card not found", slog.Int("card_id", id))
	}
}
