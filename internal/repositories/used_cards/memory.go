package used_cards

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/imaginarium/internal/models"
)

// memoryRepository keeps the ledger in process memory
type memoryRepository struct {
	mu    sync.RWMutex
	cards map[string]models.MediaType
}

// NewMemory creates an in-memory used-cards ledger
func NewMemory() *memoryRepository {
	return &memoryRepository{
		cards: make(map[string]models.MediaType),
	}
}

func (r *memoryRepository) AddUsedCards(ctx context.Context, input *AddUsedCardsInput) error {
	if input == nil {
		return ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, card := range input.Cards {
		if card.URL == "" {
			continue
		}
		r.cards[card.URL] = card.Type
	}

	return nil
}

func (r *memoryRepository) ClaimCard(ctx context.Context, input *ClaimCardInput) (bool, error) {
	if input == nil || input.Card.URL == "" {
		return false, ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cards[input.Card.URL]; ok {
		return false, nil
	}
	r.cards[input.Card.URL] = input.Card.Type
	return true, nil
}

func (r *memoryRepository) GetUsedCards(ctx context.Context, input *GetUsedCardsInput) (*GetUsedCardsOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cards := make([]models.Card, 0, len(r.cards))
	for url, mediaType := range r.cards {
		cards = append(cards, models.Card{URL: url, Type: mediaType})
	}
	sortCards(cards)

	return &GetUsedCardsOutput{
		Cards: cards,
	}, nil
}

func (r *memoryRepository) ResetUsedCards(ctx context.Context, input *ResetUsedCardsInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cards = make(map[string]models.MediaType)
	return nil
}

func sortCards(cards []models.Card) {
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].URL < cards[j].URL
	})
}
