package memory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/phrazzld/cardbox/internal/domain"
	"github.com/phrazzld/cardbox/internal/store"
)

// MemoryCardStore implements the store.CardStore interface with a
// process-lifetime slice of cards. net/http serves requests on separate
// goroutines, so a single mutex serializes every operation; no finer-grained
// locking is warranted for a collection this small.
type MemoryCardStore struct {
	mu     sync.Mutex
	cards  []domain.Card
	nextID int
	logger *slog.Logger
}

// NewMemoryCardStore creates an in-memory CardStore seeded with the given
// cards. The id counter starts one past the highest seed id, so newly
// created cards never collide with seed data. If logger is nil, a default
// logger will be used.
func NewMemoryCardStore(seed []domain.Card, logger *slog.Logger) *MemoryCardStore {
	if logger == nil {
		logger = slog.Default()
	}

	nextID := 1
	cards := make([]domain.Card, len(seed))
	copy(cards, seed)
	for _, card := range cards {
		if card.ID >= nextID {
			nextID = card.ID + 1
		}
	}

	return &MemoryCardStore{
		cards:  cards,
		nextID: nextID,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// SeedCards returns the standard startup deck: three cards with ids 1-3.
func SeedCards() []domain.Card {
	return []domain.Card{
		{ID: 1, Suit: "Hearts", Value: "Ace"},
		{ID: 2, Suit: "Spades", Value: "King"},
		{ID: 3, Suit: "Diamonds", Value: "Queen"},
	}
}

// Ensure MemoryCardStore implements store.CardStore interface
var _ store.CardStore = (*MemoryCardStore)(nil)

// List implements store.CardStore.List
// It returns a copy of the full card sequence in insertion order.
func (s *MemoryCardStore) List(ctx context.Context) ([]domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Card, len(s.cards))
	copy(out, s.cards)
	return out, nil
}

// GetByID implements store.CardStore.GetByID
// Returns store.ErrCardNotFound if no card has the given id.
func (s *MemoryCardStore) GetByID(ctx context.Context, id int) (*domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, card := range s.cards {
		if card.ID == id {
			found := card
			return &found, nil
		}
	}
	return nil, store.ErrCardNotFound
}

// Create implements store.CardStore.Create
// Validation runs before the counter advances, so a rejected create leaves
// the store untouched.
func (s *MemoryCardStore) Create(ctx context.Context, suit, value string) (*domain.Card, error) {
	card, err := domain.NewCard(suit, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	card.ID = s.nextID
	s.nextID++
	s.cards = append(s.cards, *card)

	s.logger.Debug("card created",
		slog.Int("card_id", card.ID),
		slog.String("suit", card.Suit),
		slog.String("value", card.Value))

	created := *card
	return &created, nil
}

// Update implements store.CardStore.Update
// It fully replaces the suit and value of an existing card; the id is
// preserved. Returns store.ErrCardNotFound if the id does not exist.
func (s *MemoryCardStore) Update(ctx context.Context, id int, suit, value string) (*domain.Card, error) {
	replacement, err := domain.NewCard(suit, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cards {
		if s.cards[i].ID == id {
			s.cards[i].Suit = replacement.Suit
			s.cards[i].Value = replacement.Value

			s.logger.Debug("card updated", slog.Int("card_id", id))

			updated := s.cards[i]
			return &updated, nil
		}
	}
	return nil, store.ErrCardNotFound
}

// Delete implements store.CardStore.Delete
// It splices the card out of the sequence and echoes it back. The id counter
// is untouched, so deleted ids are never reused.
func (s *MemoryCardStore) Delete(ctx context.Context, id int) (*domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cards {
		if s.cards[i].ID == id {
			removed := s.cards[i]
			s.cards = append(s.cards[:i], s.cards[i+1:]...)

			s.logger.Debug("card deleted", slog.Int("card_id", id))

			return &removed, nil
		}
	}
	return nil, store.ErrCardNotFound
}

// FilterBySuit implements store.CardStore.FilterBySuit
// Matching is case-insensitive; "hearts" matches stored "Hearts".
func (s *MemoryCardStore) FilterBySuit(ctx context.Context, suit string) ([]domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Card, 0)
	for _, card := range s.cards {
		if strings.EqualFold(card.Suit, suit) {
			out = append(out, card)
		}
	}
	return out, nil
}

// FilterByValue implements store.CardStore.FilterByValue
// Matching is case-insensitive; "ace" matches stored "Ace".
func (s *MemoryCardStore) FilterByValue(ctx context.Context, value string) ([]domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Card, 0)
	for _, card := range s.cards {
		if strings.EqualFold(card.Value, value) {
			out = append(out, card)
		}
	}
	return out, nil
}
