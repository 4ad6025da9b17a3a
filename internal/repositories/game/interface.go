package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/imaginarium/internal/repositories/game Repository

import "context"

// Repository defines the interface for finished game persistence
type Repository interface {
	// SaveGame persists the summary of a finished game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetRecentGames retrieves the latest games, newest first
	GetRecentGames(ctx context.Context, input *GetRecentGamesInput) (*GetRecentGamesOutput, error)
}
