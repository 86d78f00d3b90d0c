package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/cardbox/internal/domain"
	"github.com/phrazzld/cardbox/internal/store"
)

func newSeededStore(t *testing.T) *MemoryCardStore {
	t.Helper()
	return NewMemoryCardStore(SeedCards(), nil)
}

func TestListReturnsSeedData(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	cards, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 3)

	assert.Equal(t, domain.Card{ID: 1, Suit: "Hearts", Value: "Ace"}, cards[0])
	assert.Equal(t, domain.Card{ID: 2, Suit: "Spades", Value: "King"}, cards[1])
	assert.Equal(t, domain.Card{ID: 3, Suit: "Diamonds", Value: "Queen"}, cards[2])
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	first, err := s.Create(ctx, "Clubs", "7")
	require.NoError(t, err)
	assert.Equal(t, 4, first.ID, "id counter should be seeded past the highest seed id")

	second, err := s.Create(ctx, "Hearts", "2")
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	// Deleting must not free the id for reuse.
	_, err = s.Delete(ctx, second.ID)
	require.NoError(t, err)

	third, err := s.Create(ctx, "Spades", "Jack")
	require.NoError(t, err)
	assert.Greater(t, third.ID, second.ID, "deleted ids must never be reused")
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, "Clubs", "7")
	require.NoError(t, err)

	got, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Clubs", got.Suit)
	assert.Equal(t, "7", got.Value)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		suit    string
		value   string
		wantErr error
	}{
		{"missing suit", "", "Ace", domain.ErrSuitMissing},
		{"missing value", "Hearts", "", domain.ErrValueMissing},
		{"unknown suit", "Clovers", "Ace", domain.ErrInvalidSuit},
		{"lowercase suit", "hearts", "Ace", domain.ErrInvalidSuit},
		{"unknown value", "Hearts", "Joker", domain.ErrInvalidValue},
		{"lowercase value", "Hearts", "ace", domain.ErrInvalidValue},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Create(ctx, tc.suit, tc.value)
			require.Error(t, err)
			assert.ErrorIs(t, err, store.ErrInvalidEntity)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	// No partial writes: the store is unchanged after rejected creates.
	cards, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cards, 3)

	created, err := s.Create(ctx, "Clubs", "7")
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID, "rejected creates must not advance the id counter")
}

func TestGetByIDMissing(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrCardNotFound)
}

func TestUpdateReplacesFieldsPreservesID(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	updated, err := s.Update(ctx, 1, "Clubs", "2")
	require.NoError(t, err)
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, "Clubs", updated.Suit)
	assert.Equal(t, "2", updated.Value)

	got, err := s.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)
}

func TestUpdateMissingAndInvalid(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	_, err := s.Update(ctx, 99, "Hearts", "Ace")
	assert.ErrorIs(t, err, store.ErrCardNotFound)

	_, err = s.Update(ctx, 1, "Bad", "Ace")
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	// The card must be untouched after a rejected update.
	got, err := s.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Hearts", got.Suit)
	assert.Equal(t, "Ace", got.Value)
}

func TestDeleteRemovesCard(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	removed, err := s.Delete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Card{ID: 2, Suit: "Spades", Value: "King"}, *removed)

	_, err = s.GetByID(ctx, 2)
	assert.ErrorIs(t, err, store.ErrCardNotFound)

	cards, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cards, 2)

	_, err = s.Delete(ctx, 2)
	assert.ErrorIs(t, err, store.ErrCardNotFound)
}

func TestFilterBySuitCaseInsensitive(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	for _, query := range []string{"Hearts", "hearts", "HEARTS"} {
		cards, err := s.FilterBySuit(ctx, query)
		require.NoError(t, err)
		require.Len(t, cards, 1, "query %q", query)
		assert.Equal(t, 1, cards[0].ID)
	}

	cards, err := s.FilterBySuit(ctx, "Clubs")
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestFilterByValueCaseInsensitive(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	for _, query := range []string{"Ace", "ace", "ACE"} {
		cards, err := s.FilterByValue(ctx, query)
		require.NoError(t, err)
		require.Len(t, cards, 1, "query %q", query)
		assert.Equal(t, "Hearts", cards[0].Suit)
	}

	cards, err := s.FilterByValue(ctx, "7")
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestListReturnsCopy(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	cards, err := s.List(ctx)
	require.NoError(t, err)

	cards[0].Suit = "Clubs"

	got, err := s.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Hearts", got.Suit, "mutating a List result must not reach the store")
}
