package used_cards

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/imaginarium/internal/repositories/used_cards Repository

import (
	"context"
)

// Repository records every card that has been dealt so repeats can be avoided
type Repository interface {
	// AddUsedCards records cards as used
	AddUsedCards(ctx context.Context, input *AddUsedCardsInput) error

	// ClaimCard records a card as used. It reports false when the card was
	// already in the ledger. Concurrent claims of one card succeed only once.
	ClaimCard(ctx context.Context, input *ClaimCardInput) (bool, error)

	// GetUsedCards lists every used card, ordered by URL
	GetUsedCards(ctx context.Context, input *GetUsedCardsInput) (*GetUsedCardsOutput, error)

	// ResetUsedCards forgets every used card
	ResetUsedCards(ctx context.Context, input *ResetUsedCardsInput) error
}
