package supply

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/imaginarium/internal/services/supply Service
//go:generate mockgen -package=mocks -destination=mocks/mock_source_factory.go github.com/KirkDiggler/imaginarium/internal/services/supply SourceFactory

import (
	"context"

	"github.com/KirkDiggler/imaginarium/internal/cards"
	"github.com/KirkDiggler/imaginarium/internal/models"
)

// SourceFactory resolves links into card sources
type SourceFactory interface {
	NewSource(link string) (cards.Source, error)
}

// Service is the pool of card sources the game draws from
type Service interface {
	// AddSource resolves, validates and adds a source
	AddSource(ctx context.Context, input *AddSourceInput) (*AddSourceOutput, error)

	// RemoveSource removes a source by link
	RemoveSource(ctx context.Context, input *RemoveSourceInput) error

	// ResetSources removes every source
	ResetSources(ctx context.Context) error

	// GetSources lists the sources in the pool, in the order they were added
	GetSources(ctx context.Context) (*GetSourcesOutput, error)

	// GetRandomSource picks a source weighted by its card count
	GetRandomSource(ctx context.Context) (cards.Source, error)

	// GetRandomCard draws one card, evicting broken sources on the way
	GetRandomCard(ctx context.Context) (*models.Card, error)

	// GetRandomCards draws count independent cards concurrently.
	// Result order follows request index.
	GetRandomCards(ctx context.Context, count int) ([]models.Card, error)

	// GetUsedCards lists the used-cards ledger
	GetUsedCards(ctx context.Context) ([]models.Card, error)

	// ResetUsedCards clears the used-cards ledger
	ResetUsedCards(ctx context.Context) error

	// SetLocked freezes the pool against add/remove while a game runs
	SetLocked(locked bool)
}
