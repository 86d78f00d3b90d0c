package store

import (
	"context"

	"github.com/phrazzld/cardbox/internal/domain"
)

// CardStore defines the interface for card storage.
//
// All lookups are linear scans; the collection is small and unindexed, and no
// scale requirement exists. Implementations must assign ids from a counter
// that only increases, so deleted ids are never reused.
type CardStore interface {
	// List returns every card in the store, in insertion order.
	List(ctx context.Context) ([]domain.Card, error)

	// GetByID retrieves a card by its unique ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id int) (*domain.Card, error)

	// Create validates the given suit and value, assigns the next id, and
	// appends the card to the store. Returns ErrInvalidEntity (wrapping the
	// specific domain validation error) if the input is invalid; no mutation
	// happens in that case.
	Create(ctx context.Context, suit, value string) (*domain.Card, error)

	// Update replaces the suit and value of the card with the given id,
	// preserving the id. Partial updates are not supported: both fields are
	// required. Returns ErrCardNotFound if the id does not exist and
	// ErrInvalidEntity if validation fails; validation runs before the
	// existence check mutates nothing.
	Update(ctx context.Context, id int, suit, value string) (*domain.Card, error)

	// Delete removes the card with the given id and returns it.
	// Returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, id int) (*domain.Card, error)

	// FilterBySuit returns all cards whose suit matches, case-insensitively.
	// A miss is not an error: the result is an empty slice.
	FilterBySuit(ctx context.Context, suit string) ([]domain.Card, error)

	// FilterByValue returns all cards whose value matches, case-insensitively.
	// A miss is not an error: the result is an empty slice.
	FilterByValue(ctx context.Context, value string) ([]domain.Card, error)
}
