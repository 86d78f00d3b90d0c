package api

import "github.com/phrazzld/cardbox/internal/domain"

// CardRequest is the request body for creating or updating a card. Both
// fields are required: partial updates are not supported, a PUT replaces
// everything except the id.
type CardRequest struct {
	Suit  string `json:"suit"  validate:"required"`
	Value string `json:"value" validate:"required"`
}

// DeleteCardResponse is the response body for a successful delete. The
// removed card is echoed back alongside a confirmation message.
type DeleteCardResponse struct {
	Message string      `json:"message"`
	Card    domain.Card `json:"card"`
}
