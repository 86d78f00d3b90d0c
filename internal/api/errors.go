package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/cardbox/internal/domain"
	"github.com/phrazzld/cardbox/internal/store"
)

// Canonical enumeration messages, built once from the domain lists so the
// wire text can never drift from what validation actually accepts.
var (
	suitEnumMessage  = "Suit must be one of: " + strings.Join(domain.Suits, ", ")
	valueEnumMessage = "Value must be one of: " + strings.Join(domain.Values, ", ")
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// ValidationErrorBody maps a validation failure to the error label and
// message of the response body. It understands both the domain sentinel
// errors (wrapped in store.ErrInvalidEntity by the store) and
// go-playground/validator required-field errors from request structs.
func ValidationErrorBody(err error) (label, message string) {
	switch {
	case errors.Is(err, domain.ErrSuitMissing):
		return "Missing field", "Suit is required"

	case errors.Is(err, domain.ErrValueMissing):
		return "Missing field", "Value is required"

	case errors.Is(err, domain.ErrInvalidSuit):
		return "Invalid suit", suitEnumMessage

	case errors.Is(err, domain.ErrInvalidValue):
		return "Invalid value", valueEnumMessage

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid card ID", "Card ID must be an integer"
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		// Struct field order makes this deterministic: when both fields are
		// absent, suit is reported first.
		switch fieldErrs[0].Field() {
		case "Suit":
			return "Missing field", "Suit is required"
		case "Value":
			return "Missing field", "Value is required"
		}
	}

	return "Validation error", "Request validation failed"
}
