package game

import "github.com/KirkDiggler/imaginarium/internal/models"

type SaveGameInput struct {
	Summary *models.GameSummary
}

type GetRecentGamesInput struct {
	// Limit caps the number of games returned; zero means DefaultRecentLimit
	Limit int
}

type GetRecentGamesOutput struct {
	Games []*models.GameSummary
}
