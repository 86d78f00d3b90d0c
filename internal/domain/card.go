package domain

import "errors"

// Card-specific validation errors
var (
	// ErrSuitMissing is returned when a card's suit is absent from the input.
	ErrSuitMissing = errors.New("suit is required")

	// ErrValueMissing is returned when a card's value is absent from the input.
	ErrValueMissing = errors.New("value is required")

	// ErrInvalidSuit is returned when a card's suit is not one of the four
	// canonical suits.
	ErrInvalidSuit = errors.New("suit must be one of the four canonical suits")

	// ErrInvalidValue is returned when a card's value is not one of the
	// thirteen canonical ranks.
	ErrInvalidValue = errors.New("value must be one of the thirteen canonical ranks")
)

// Suits lists the canonical suit spellings, in display order.
var Suits = []string{"Hearts", "Diamonds", "Clubs", "Spades"}

// Values lists the canonical rank spellings, in display order.
var Values = []string{
	"Ace", "2", "3", "4", "5", "6", "7", "8", "9", "10",
	"Jack", "Queen", "King",
}

// Card represents a single playing card in the store. The ID is assigned by
// the store on creation and never changes afterwards.
type Card struct {
	ID    int    `json:"id"`
	Suit  string `json:"suit"`
	Value string `json:"value"`
}

// NewCard creates a Card with the given suit and value. The ID is left zero;
// the store assigns it on insertion. Returns an error if validation fails.
func NewCard(suit, value string) (*Card, error) {
	card := &Card{
		Suit:  suit,
		Value: value,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks the card's suit and value against the canonical
// enumerations. Comparison is case-sensitive: "hearts" is rejected here even
// though the filter endpoints accept it.
func (c *Card) Validate() error {
	if c.Suit == "" {
		return ErrSuitMissing
	}

	if c.Value == "" {
		return ErrValueMissing
	}

	if !ValidSuit(c.Suit) {
		return ErrInvalidSuit
	}

	if !ValidValue(c.Value) {
		return ErrInvalidValue
	}

	return nil
}

// ValidSuit reports whether suit is one of the canonical suit spellings.
func ValidSuit(suit string) bool {
	for _, s := range Suits {
		if suit == s {
			return true
		}
	}
	return false
}

// ValidValue reports whether value is one of the canonical rank spellings.
func ValidValue(value string) bool {
	for _, v := range Values {
		if value == v {
			return true
		}
	}
	return false
}
